package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"textanalyzer/internal/driver"
	"textanalyzer/internal/export"
)

func newWordstatPlusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordstatplus IN [OUT]",
		Short: "Record every position of every word",
		Long: `wordstatplus writes "<word> <count> <p1> <p2> ..." lines ordered by first position.
--format csv writes frequency-sorted word,count,positions rows and
--format msgpack saves a binary snapshot for the merge command`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			out := optionalArg(args, 1)
			switch format {
			case "positions", "csv":
			case "msgpack":
				if out == "" || out == "-" {
					return fmt.Errorf("--format msgpack needs an OUT file")
				}
			default:
				return fmt.Errorf("unknown format: %s", format)
			}

			uiValue, err := cmd.Flags().GetString("ui")
			if err != nil {
				return fmt.Errorf("failed to get ui flag: %w", err)
			}
			mode, err := readUIMode(uiValue)
			if err != nil {
				return err
			}

			opts, err := a.driverOptions(cmd)
			if err != nil {
				return err
			}

			in := args[0]
			var res *driver.Result
			if in != "-" && shouldUseTUI(mode, cmd.ErrOrStderr()) {
				res, err = runAnalysisWithUI(cmd.ErrOrStderr(), "wordstatplus "+in, opts, func(o driver.Options) (*driver.Result, error) {
					return a.analyze(cmd, in, o)
				})
			} else {
				res, err = a.analyze(cmd, in, opts)
			}
			if err != nil {
				return err
			}

			phase := a.timer.Begin("export")
			switch format {
			case "msgpack":
				err = export.SaveSnapshot(out, res.Acc)
			case "csv":
				err = withOutput(cmd, out, func(w io.Writer) error { return export.WriteFrequencyCSV(w, res.Acc) })
			default:
				err = withOutput(cmd, out, func(w io.Writer) error { return export.WritePositions(w, res.Acc) })
			}
			a.timer.End(phase, format)
			if err != nil {
				return err
			}
			return a.finish(cmd, res.Bag)
		},
	}
	addAnalysisFlags(cmd)
	cmd.Flags().String("format", "positions", "output format (positions|csv|msgpack)")
	cmd.Flags().String("ui", "auto", "progress UI mode (auto|on|off)")
	return cmd
}
