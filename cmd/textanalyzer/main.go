package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"textanalyzer/internal/version"
)

// main runs the CLI; the process exits with status 1 when the command fails.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute builds a fresh command tree, runs args and releases the session.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	a := &app{}
	defer a.close()
	defer a.dumpTraceOnPanic()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		// диагностики уже напечатаны
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "textanalyzer",
		Short: "Streaming word and text statistics",
		Long: `textanalyzer tokenizes text of any size with bounded memory and reports
word frequencies with positions, top words, word lengths and full text statistics`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	// Глобальные флаги
	flags := root.PersistentFlags()
	flags.String("config", "", "path to textanalyzer.toml (default: nearest one above the working directory)")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress warnings and informational output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	flags.String("diag-format", "pretty", "diagnostics format (pretty|json|sarif)")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.Int("trace-ring-size", 0, "ring buffer size for ring mode (0 = default)")
	flags.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 = off)")
	flags.String("cpu-profile", "", "write CPU profile to file")
	flags.String("mem-profile", "", "write heap profile to file on exit")
	flags.String("runtime-trace", "", "write runtime trace to file")

	root.AddCommand(
		newWordstatCmd(a),
		newWordstatPlusCmd(a),
		newTopWordsCmd(a),
		newWordLengthCmd(a),
		newTextstatCmd(a),
		newReverseCmd(a),
		newTokenizeCmd(a),
		newMergeCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
