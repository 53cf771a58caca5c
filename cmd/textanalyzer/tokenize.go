package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"textanalyzer/internal/diagfmt"
	"textanalyzer/internal/driver"
)

func newTokenizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] IN",
		Short: "Print the token stream of a text file",
		Long:  `Tokenize breaks a text down into word, number, punctuation, whitespace and newline tokens`,
		Args:  cobra.ExactArgs(1),
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

			opts, err := a.driverOptions(cmd)
			if err != nil {
				return err
			}

			var result *driver.TokenizeResult
			if args[0] == "-" {
				result, err = driver.Tokenize(cmd.Context(), cmd.InOrStdin(), "", opts)
			} else {
				result, err = driver.TokenizeFile(cmd.Context(), args[0], opts)
			}
			if err != nil {
				return inputError(args[0], err)
			}

			err = withOutput(cmd, "", func(w io.Writer) error {
				if format == "json" {
					return diagfmt.FormatTokensJSON(w, result.Tokens)
				}
				return diagfmt.FormatTokensPretty(w, result.Tokens)
			})
			if err != nil {
				return err
			}
			return a.finish(cmd, result.Bag)
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}
