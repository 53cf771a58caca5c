package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"textanalyzer/internal/driver"
	"textanalyzer/internal/export"
)

func newWordstatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordstat IN [OUT]",
		Short: "Count every word, in order of first appearance",
		Long: `wordstat writes one "<word> <count>" line per distinct word, in the order the
words first appear. IN may be a file, a directory of *.txt files or - for stdin`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCounting(cmd, args[0], optionalArg(args, 1), func(w io.Writer, res *driver.Result) error {
				return export.WriteCounts(w, res.Acc.Entries())
			})
		},
	}
	addAnalysisFlags(cmd)
	return cmd
}

func newTopWordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topwords IN [N] [OUT]",
		Short: "Show the N most frequent words",
		Long: `topwords writes "<word> <count>" for the N most frequent words, ties broken
alphabetically. N defaults to [output].top from the config`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, out, err := parseTopArgs(args, a.cfg.Output.Top)
			if err != nil {
				return err
			}
			return a.runCounting(cmd, args[0], out, func(w io.Writer, res *driver.Result) error {
				return export.WriteCounts(w, res.Acc.TopWords(n))
			})
		},
	}
	addAnalysisFlags(cmd)
	return cmd
}

// parseTopArgs reads "IN [N] [OUT]": a second argument that is not an
// integer is the output path.
func parseTopArgs(args []string, def int) (n int, out string, err error) {
	n = def
	switch len(args) {
	case 2:
		if v, convErr := strconv.Atoi(args[1]); convErr == nil {
			n = v
		} else {
			out = args[1]
		}
	case 3:
		if n, err = strconv.Atoi(args[1]); err != nil {
			return 0, "", fmt.Errorf("invalid N %q: must be an integer", args[1])
		}
		out = args[2]
	}
	if n < 0 {
		return 0, "", fmt.Errorf("invalid N %d: must be >= 0", n)
	}
	return n, out, nil
}

func newWordLengthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlength IN [OUT]",
		Short: "Show how many distinct words have each length",
		Long: `wordlength writes "<length> <count>" lines in ascending length order; every
occurrence of a word counts`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCounting(cmd, args[0], optionalArg(args, 1), func(w io.Writer, res *driver.Result) error {
				return export.WriteLengths(w, res.Acc.LengthDistribution())
			})
		},
	}
	addAnalysisFlags(cmd)
	return cmd
}

// runCounting analyzes in, writes the result with write and reports diagnostics.
func (a *app) runCounting(cmd *cobra.Command, in, out string, write func(io.Writer, *driver.Result) error) error {
	opts, err := a.driverOptions(cmd)
	if err != nil {
		return err
	}
	res, err := a.analyze(cmd, in, opts)
	if err != nil {
		return err
	}
	phase := a.timer.Begin("export")
	err = withOutput(cmd, out, func(w io.Writer) error { return write(w, res) })
	a.timer.End(phase, "")
	if err != nil {
		return err
	}
	return a.finish(cmd, res.Bag)
}
