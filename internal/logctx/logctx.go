package logctx

import (
	"context"
	"log/slog"
)

// Handler decorates records with the command and definition set carried by
// the context.
type Handler struct {
	slog.Handler
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if cd, ok := ctx.Value(commandDataKey{}).(*CommandData); ok {
		attrs := []any{slog.String("path", cd.Path)}
		if cd.File != "" {
			attrs = append(attrs, slog.String("file", cd.File))
		}
		r.AddAttrs(slog.Group("cmd", attrs...))
	}

	if sd, ok := ctx.Value(setDataKey{}).(*SetData); ok {
		r.AddAttrs(slog.Group("set",
			slog.String("name", sd.Name),
			slog.Int("len", sd.Len),
		))
	}

	return h.Handler.Handle(ctx, r)
}

func (h Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Handler{h.Handler.WithAttrs(attrs)}
}

func (h Handler) WithGroup(name string) slog.Handler {
	return Handler{h.Handler.WithGroup(name)}
}

type commandDataKey struct{}

type CommandData struct {
	Path string
	File string
}

func WithCommandData(ctx context.Context, data *CommandData) context.Context {
	return context.WithValue(ctx, commandDataKey{}, data)
}

type setDataKey struct{}

type SetData struct {
	Name string
	Len  int
}

func WithSetData(ctx context.Context, data *SetData) context.Context {
	return context.WithValue(ctx, setDataKey{}, data)
}
