package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/ggoodman/literals-go/query"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"LITKIT_LOG_LEVEL", "LITKIT_LOG_FORMAT", "LITKIT_QUERY_FORM"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{LogLevel: "info", LogFormat: "text", QueryForm: "object"}
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("LITKIT_LOG_LEVEL", "debug")
	t.Setenv("LITKIT_LOG_FORMAT", "json")
	t.Setenv("LITKIT_QUERY_FORM", "record")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	f, err := cfg.form()
	if err != nil || f != query.FormRecord {
		t.Fatalf("form = %q, %v", f, err)
	}

	var buf bytes.Buffer
	log, err := cfg.Logger(&buf)
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	log.Debug("hello")
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected a JSON debug record, got %q: %v", buf.String(), err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []Config{
		{LogLevel: "loud", LogFormat: "text", QueryForm: "object"},
		{LogLevel: "info", LogFormat: "xml", QueryForm: "object"},
		{LogLevel: "info", LogFormat: "text", QueryForm: "tuple"},
	}
	for _, cfg := range tests {
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", cfg)
		}
	}
}
