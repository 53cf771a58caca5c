package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"textanalyzer/internal/config"
	"textanalyzer/internal/diag"
	"textanalyzer/internal/diagfmt"
	"textanalyzer/internal/driver"
	"textanalyzer/internal/observ"
	"textanalyzer/internal/prof"
	"textanalyzer/internal/trace"
	"textanalyzer/internal/version"
)

// errReported means diagnostics with errors were already printed.
var errReported = errors.New("analysis reported errors")

// app holds per-invocation state shared by the commands.
type app struct {
	cfg            config.Config
	color          bool
	quiet          bool
	maxDiagnostics int
	diagFormat     string
	timer          *observ.Timer

	tracing *tracing
	runSpan *trace.Span
	profile *prof.Session
	errOut  io.Writer
}

// setup loads configuration and prepares color, timings and tracing.
// It runs before every command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath != "" {
		a.cfg, err = config.Load(configPath)
	} else {
		a.cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		a.color = true
	case "off":
		a.color = false
	case "auto":
		a.color = isTerminal(cmd.ErrOrStderr())
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
	color.NoColor = !a.color

	if a.quiet, err = flags.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if a.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if a.maxDiagnostics < 0 {
		return fmt.Errorf("--max-diagnostics must be >= 0")
	}
	if a.diagFormat, err = flags.GetString("diag-format"); err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch a.diagFormat {
	case "pretty", "json", "sarif":
	default:
		return fmt.Errorf("invalid --diag-format value %q (expected pretty|json|sarif)", a.diagFormat)
	}

	showTimings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if showTimings {
		a.timer = observ.NewTimer()
	}

	a.errOut = cmd.ErrOrStderr()
	if a.profile, err = setupProfiling(cmd); err != nil {
		return err
	}
	a.tracing, err = setupTracing(cmd)
	if err != nil {
		return err
	}
	tracer := trace.FromContext(cmd.Context())
	a.runSpan = trace.Begin(tracer, trace.ScopeRun, cmd.Name(), 0)
	cmd.SetContext(trace.WithSpan(cmd.Context(), a.runSpan))
	return nil
}

// close ends the run span and shuts the tracer down. Safe on a partial setup.
func (a *app) close() {
	if a.runSpan != nil {
		a.runSpan.End("")
		a.runSpan = nil
	}
	if a.tracing != nil {
		a.tracing.close()
		a.tracing = nil
	}
	if err := a.profile.Stop(); err != nil && a.errOut != nil {
		fmt.Fprintf(a.errOut, "profiling: %v\n", err)
	}
	a.profile = nil
}

// dumpTraceOnPanic flushes the ring buffer before re-panicking.
func (a *app) dumpTraceOnPanic() {
	if r := recover(); r != nil {
		if a.tracing != nil {
			a.tracing.dumpRing()
		}
		panic(r)
	}
}

// driverOptions merges the config with the analysis flags of cmd.
func (a *app) driverOptions(cmd *cobra.Command) (driver.Options, error) {
	opts := driver.Options{
		Scanner:        a.cfg.ScannerOptions(),
		Stats:          a.cfg.StatsOptions(),
		Jobs:           a.cfg.Jobs(),
		MinChunkSize:   a.cfg.Parallel.MinChunkSize,
		MaxFileSize:    a.cfg.Input.MaxFileSize,
		MaxDiagnostics: a.maxDiagnostics,
		Timer:          a.timer,
	}
	if f := cmd.Flags().Lookup("jobs"); f != nil {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return opts, fmt.Errorf("failed to get jobs flag: %w", err)
		}
		if jobs < 0 {
			return opts, fmt.Errorf("--jobs must be >= 0")
		}
		if jobs > 0 {
			opts.Jobs = jobs
		}
	}
	if f := cmd.Flags().Lookup("skip-malformed"); f != nil {
		skip, err := cmd.Flags().GetBool("skip-malformed")
		if err != nil {
			return opts, fmt.Errorf("failed to get skip-malformed flag: %w", err)
		}
		opts.SkipMalformed = skip
	}
	return opts, nil
}

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().Int("jobs", 0, "max parallel workers (0 = [parallel].jobs from config)")
	cmd.Flags().Bool("skip-malformed", false, "report over-long tokens and malformed numbers as warnings and continue")
}

// analyze dispatches on the input kind: "-" is stdin, a directory means
// every *.txt file below it, anything else is a single file.
func (a *app) analyze(cmd *cobra.Command, in string, opts driver.Options) (*driver.Result, error) {
	ctx := cmd.Context()
	if in == "-" {
		return driver.AnalyzeReader(ctx, cmd.InOrStdin(), opts)
	}
	info, err := os.Stat(in)
	if err != nil {
		return nil, inputError(in, err)
	}
	if info.IsDir() {
		return driver.AnalyzeDir(ctx, in, opts)
	}
	res, err := driver.AnalyzeFile(ctx, in, opts)
	if err != nil {
		return nil, inputError(in, err)
	}
	return res, nil
}

func inputError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("input file %q does not exist", path)
	case errors.Is(err, driver.ErrFileTooLarge):
		return fmt.Errorf("input file is too large: %w", err)
	}
	return err
}

// finish prints diagnostics and timings to stderr. It returns errReported
// when bag holds errors, so the process exits with status 1.
func (a *app) finish(cmd *cobra.Command, bag *diag.Bag) error {
	if bag == nil {
		bag = diag.NewBag(a.maxDiagnostics)
	}
	stderr := cmd.ErrOrStderr()
	if a.timer != nil && a.diagFormat != "pretty" {
		observ.AppendDiagnostic(bag, cmd.Name(), "", a.timer.Report())
	}
	bag.Sort()

	visible := bag
	if a.quiet {
		visible = diag.NewBag(a.maxDiagnostics)
		for _, d := range bag.Items() {
			if d.Severity >= diag.SevError {
				visible.Add(d)
			}
		}
	}

	var err error
	switch a.diagFormat {
	case "json":
		if visible.Len() > 0 {
			err = diagfmt.JSON(stderr, visible, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
		}
	case "sarif":
		err = diagfmt.Sarif(stderr, visible, diagfmt.SarifRunMeta{
			ToolName:       "textanalyzer",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	default:
		err = diagfmt.Pretty(stderr, visible, diagfmt.PrettyOpts{Color: a.color, ShowNotes: true})
		if err == nil && a.timer != nil && !a.quiet {
			printTimings(stderr, a.timer)
		}
	}
	if err != nil {
		return err
	}
	if bag.HasErrors() {
		return errReported
	}
	return nil
}

// withOutput runs fn against the file at path, or stdout for "" and "-".
func withOutput(cmd *cobra.Command, path string, fn func(w io.Writer) error) (err error) {
	var dst io.Writer
	if path == "" || path == "-" {
		dst = cmd.OutOrStdout()
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		dst = f
	}
	w := bufio.NewWriter(dst)
	if err := fn(w); err != nil {
		return err
	}
	return w.Flush()
}

// optionalArg returns args[i] or "".
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return strings.TrimSpace(args[i])
	}
	return ""
}

// openReader opens in for streaming commands that do not go through the
// chunked analyzer; "-" is stdin.
func (a *app) openReader(cmd *cobra.Command, in string) (io.ReadCloser, error) {
	if in == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, _, err := driver.OpenInput(in, a.cfg.Input.MaxFileSize)
	if err != nil {
		return nil, inputError(in, err)
	}
	return f, nil
}
