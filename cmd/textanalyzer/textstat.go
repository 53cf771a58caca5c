package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"textanalyzer/internal/diagfmt"
	"textanalyzer/internal/textstat"
)

func newTextstatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textstat IN [OUT]",
		Short: "Print character, line, sentence and word statistics",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			switch format {
			case "pretty", "json":
			default:
				return fmt.Errorf("unknown format: %s", format)
			}

			in, err := a.openReader(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			var st *textstat.Stats
			err = a.timer.Measure("textstat", func() error {
				var aerr error
				st, aerr = textstat.Analyze(in, textstat.Options{
					Scanner: a.cfg.ScannerOptions(),
					Stats:   a.cfg.StatsOptions(),
				})
				return aerr
			})
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			err = withOutput(cmd, optionalArg(args, 1), func(w io.Writer) error {
				if format == "json" {
					return diagfmt.TextStats(w, st)
				}
				return st.Report(w)
			})
			if err != nil {
				return err
			}
			return a.finish(cmd, nil)
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}
