package main

import (
	"context"
	"log/slog"

	"github.com/ggoodman/literals-go/internal/logctx"
	"github.com/spf13/cobra"
)

type app struct {
	cfg Config
	log *slog.Logger
}

func newRootCmd(cfg Config, log *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, log: log}
	root := &cobra.Command{
		Use:          "litkit",
		Short:        "Work with enumerated literal sets and URL query parameters",
		SilenceUsage: true,
	}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(logctx.WithCommandData(ctx, &logctx.CommandData{Path: cmd.CommandPath()}))
	}
	root.AddCommand(a.humanizeCmd(), a.queryCmd(), a.literalsCmd())
	return root
}
