package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `config prints the configuration after defaults, textanalyzer.toml discovery
and --config are applied`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withOutput(cmd, "", func(w io.Writer) error {
				return a.cfg.Encode(w)
			})
		},
	}
}
