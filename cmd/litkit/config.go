package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ggoodman/literals-go/internal/logctx"
	"github.com/ggoodman/literals-go/literals"
	"github.com/ggoodman/literals-go/query"
	"github.com/joeshaw/envdecode"
)

type logFormat string

const (
	logFormatText logFormat = "text"
	logFormatJSON logFormat = "json"
)

var logFormats = literals.MustNew(logFormatText, logFormatJSON)

// Config is read from the environment. Flags override it per command.
type Config struct {
	LogLevel  string `env:"LITKIT_LOG_LEVEL,default=info"`
	LogFormat string `env:"LITKIT_LOG_FORMAT,default=text"`
	QueryForm string `env:"LITKIT_QUERY_FORM,default=object"`
}

// LoadConfig decodes and validates Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("litkit: config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field without building anything.
func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	if err := logFormats.Assert(c.LogFormat); err != nil {
		return fmt.Errorf("litkit: LITKIT_LOG_FORMAT: %w", err)
	}
	if _, err := c.form(); err != nil {
		return err
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("litkit: LITKIT_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

func (c Config) form() (query.Form, error) {
	f, err := query.Forms.Parse(c.QueryForm)
	if err != nil {
		return "", fmt.Errorf("litkit: LITKIT_QUERY_FORM: %w", err)
	}
	return f, nil
}

// Logger builds the slog logger described by c, writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	format, err := logFormats.Parse(c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("litkit: LITKIT_LOG_FORMAT: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	switch format {
	case logFormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(logctx.Handler{Handler: h}), nil
}
