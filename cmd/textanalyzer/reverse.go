package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"textanalyzer/internal/reverse"
)

func newReverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse IN [OUT]",
		Short: "Write the integers of IN with lines and numbers in reverse order",
		Long: `reverse reads integers line by line and writes the last line first, each
line's numbers reversed: "1 2 3\n4 5 6" becomes "6 5 4\n3 2 1"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.openReader(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			err = withOutput(cmd, optionalArg(args, 1), func(w io.Writer) error {
				return a.timer.Measure("reverse", func() error {
					return reverse.Numbers(in, w, a.cfg.ScannerOptions())
				})
			})
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return a.finish(cmd, nil)
		},
	}
}
