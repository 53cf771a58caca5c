package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/export"
	"textanalyzer/internal/stats"
)

func newMergeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge exported statistics in argument order",
		Long: `merge loads statistics exported by wordstatplus and merges them in argument
order: positions of later files follow those of earlier ones. The format is
chosen by extension (.msgpack snapshot, .csv, anything else the positions
text). With --out the result is saved as a msgpack snapshot, otherwise
positions are printed. Files that fail to load are reported and skipped`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath, err := cmd.Flags().GetString("out")
			if err != nil {
				return fmt.Errorf("failed to get out flag: %w", err)
			}

			sopts := a.cfg.StatsOptions()
			bag := diag.NewBag(a.maxDiagnostics)
			merged := stats.New(sopts)
			err = a.timer.Measure("merge", func() error {
				for _, path := range args {
					acc, err := export.LoadFile(path, sopts)
					if err != nil {
						bag.Add(export.Diagnostic(path, err))
						continue
					}
					if err := merged.Merge(acc); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			if bag.HasErrors() {
				// частичный результат не сохраняем
				return a.finish(cmd, bag)
			}
			if outPath != "" {
				if err := export.SaveSnapshot(outPath, merged); err != nil {
					return err
				}
			} else {
				err = withOutput(cmd, "", func(w io.Writer) error { return export.WritePositions(w, merged) })
				if err != nil {
					return err
				}
			}
			return a.finish(cmd, bag)
		},
	}
	cmd.Flags().String("out", "", "write the merged snapshot to FILE")
	return cmd
}
