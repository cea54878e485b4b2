package main

import (
	"fmt"

	"github.com/ggoodman/literals-go/humanize"
	"github.com/spf13/cobra"
)

func (a *app) humanizeCmd() *cobra.Command {
	var (
		or        bool
		noOxford  bool
		delimiter string
		quote     bool
	)
	cmd := &cobra.Command{
		Use:   "humanize ITEM...",
		Short: "Join items into a human readable list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []humanize.Option{
				humanize.WithOxfordComma(!noOxford),
				humanize.WithDelimiter(delimiter),
			}
			if or {
				opts = append(opts, humanize.WithConjunction(humanize.Or))
			}
			format := func(s string) string { return s }
			if quote {
				format = humanize.Quote[string]
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), humanize.ListFunc(args, format, opts...))
			return err
		},
	}
	cmd.Flags().BoolVar(&or, "or", false, `join with "or" instead of "and"`)
	cmd.Flags().BoolVar(&noOxford, "no-oxford", false, "omit the delimiter before the conjunction")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "item delimiter")
	cmd.Flags().BoolVar(&quote, "quote", false, "single-quote each item")
	return cmd
}
