package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ggoodman/literals-go/humanize"
	"github.com/ggoodman/literals-go/query"
	"github.com/spf13/cobra"
)

func (a *app) queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Parse, convert and merge URL query parameters",
	}
	cmd.AddCommand(a.queryParseCmd(), a.queryMergeCmd(), a.queryAddCmd())
	return cmd
}

// formFlag resolves --form, falling back to LITKIT_QUERY_FORM.
func (a *app) formFlag(raw string) (query.Form, error) {
	if raw == "" {
		return a.cfg.form()
	}
	return query.Forms.Parse(raw)
}

func (a *app) queryParseCmd() *cobra.Command {
	var (
		form     string
		keys     []string
		lenient  bool
		validURL bool
	)
	cmd := &cobra.Command{
		Use:   "parse INPUT",
		Short: "Parse the query of a path or URL and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.formFlag(form)
			if err != nil {
				return err
			}
			opts := []query.ParseOption{query.WithForm(f)}
			if len(keys) > 0 {
				opts = append(opts, query.WithKeys(keys...), query.WithStrict(!lenient))
			}
			if validURL {
				opts = append(opts, query.WithValidURL())
			}
			out, err := query.Parse(args[0], opts...)
			if err != nil {
				return err
			}
			a.log.DebugContext(cmd.Context(), "query parsed", "form", string(f))
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&form, "form", "", "result form, one of "+humanize.List(query.Forms.Values(), humanize.WithConjunction(humanize.Or)))
	cmd.Flags().StringArrayVar(&keys, "key", nil, "only keep this key (repeatable); required unless --lenient")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "do not fail when a --key is missing")
	cmd.Flags().BoolVar(&validURL, "valid-url", false, "require INPUT to be an absolute URL")
	return cmd
}

func (a *app) queryMergeCmd() *cobra.Command {
	var form string
	cmd := &cobra.Command{
		Use:   "merge FIRST SECOND [REST...]",
		Short: "Merge query strings left to right and print the result as JSON",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.formFlag(form)
			if err != nil {
				return err
			}
			// Merging into the raw argument keeps its path in the string form.
			var first any = asQuery(args[0])
			if f != query.FormString {
				if first, err = query.Transform(first, f); err != nil {
					return err
				}
			}
			rest := make([]any, 0, len(args)-2)
			for _, arg := range args[2:] {
				rest = append(rest, asQuery(arg))
			}
			out, err := query.Merge(first, asQuery(args[1]), rest...)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&form, "form", "", "result form")
	return cmd
}

func (a *app) queryAddCmd() *cobra.Command {
	var (
		sets    []string
		replace bool
	)
	cmd := &cobra.Command{
		Use:   "add URL",
		Short: "Add query parameters to a path or URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make([]query.Pair, 0, len(sets))
			for _, s := range sets {
				k, v, ok := strings.Cut(s, "=")
				if !ok || k == "" {
					return fmt.Errorf("litkit: --set %q: expected key=value", s)
				}
				params = append(params, query.Pair{Key: k, Value: v})
			}
			var opts []query.AddOption
			if replace {
				opts = append(opts, query.WithReplaceExisting())
			}
			out, err := query.AddToURL(args[0], params, opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "key=value to add (repeatable)")
	cmd.Flags().BoolVar(&replace, "replace", false, "discard the existing query")
	return cmd
}

// asQuery lets bare "a=1&b=2" arguments stand in for "?a=1&b=2".
func asQuery(s string) string {
	if strings.Contains(s, "?") {
		return s
	}
	return "?" + s
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
