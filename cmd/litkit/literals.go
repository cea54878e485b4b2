package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ggoodman/literals-go/humanize"
	"github.com/ggoodman/literals-go/internal/definition"
	"github.com/ggoodman/literals-go/internal/logctx"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func (a *app) literalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "literals",
		Short: "Validate and describe literal set definition files",
	}
	cmd.AddCommand(a.literalsCheckCmd(), a.literalsSchemaCmd())
	return cmd
}

func withFile(cmd *cobra.Command, file string) context.Context {
	return logctx.WithCommandData(cmd.Context(), &logctx.CommandData{Path: cmd.CommandPath(), File: file})
}

func (a *app) literalsCheckCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Build every set in FILE and print its accessors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withFile(cmd, args[0])
			out := cmd.OutOrStdout()
			if !watch {
				built, err := a.build(ctx, args[0])
				if err != nil {
					return err
				}
				return printSets(out, built)
			}
			return definition.Watch(ctx, args[0], func(doc *definition.Document, err error) {
				var built []definition.Built
				if err == nil {
					built, err = doc.Build()
				}
				if err != nil {
					a.log.ErrorContext(ctx, "invalid definition", "err", err)
					return
				}
				a.logSets(ctx, built)
				if err := printSets(out, built); err != nil {
					a.log.ErrorContext(ctx, "write failed", "err", err)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "rebuild whenever FILE changes")
	return cmd
}

func (a *app) literalsSchemaCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "schema FILE",
		Short: "Print the JSON Schema of the sets in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			built, err := a.build(withFile(cmd, args[0]), args[0])
			if err != nil {
				return err
			}
			if name != "" {
				names := make([]string, 0, len(built))
				for _, b := range built {
					if b.Name == name {
						return writeJSON(cmd.OutOrStdout(), b.Set.JSONSchema())
					}
					names = append(names, b.Name)
				}
				return fmt.Errorf("litkit: no set named %q, expected %s", name,
					humanize.ListFunc(names, humanize.Quote[string], humanize.WithConjunction(humanize.Or)))
			}
			doc := &jsonschema.Schema{Version: jsonschema.Version, Definitions: jsonschema.Definitions{}}
			for _, b := range built {
				doc.Definitions[b.Name] = b.Set.JSONSchema()
			}
			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}
	cmd.Flags().StringVar(&name, "set", "", "print only the named set")
	return cmd
}

func (a *app) build(ctx context.Context, path string) ([]definition.Built, error) {
	doc, err := definition.LoadFile(path)
	if err != nil {
		return nil, err
	}
	built, err := doc.Build()
	if err != nil {
		return nil, err
	}
	a.logSets(ctx, built)
	return built, nil
}

func (a *app) logSets(ctx context.Context, built []definition.Built) {
	for _, b := range built {
		a.log.DebugContext(logctx.WithSetData(ctx, &logctx.SetData{Name: b.Name, Len: b.Set.Len()}), "set built")
	}
}

func printSets(w io.Writer, built []definition.Built) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, b := range built {
		fmt.Fprintf(tw, "%s\t%s\n", b.Name, b.Set.Fingerprint())
		for _, accessor := range b.Set.AccessorKeys() {
			fmt.Fprintf(tw, "  %s\t%s\n", accessor, b.Set.MustGet(accessor))
		}
	}
	return tw.Flush()
}
