package logctx

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(Handler{slog.NewJSONHandler(&buf, nil)})

	ctx := WithCommandData(context.Background(), &CommandData{Path: "litkit literals check", File: "sets.yaml"})
	ctx = WithSetData(ctx, &SetData{Name: "roles", Len: 3})
	log.InfoContext(ctx, "built")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"path": "litkit literals check", "file": "sets.yaml"}, rec["cmd"]); diff != "" {
		t.Fatalf("cmd group mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"name": "roles", "len": float64(3)}, rec["set"]); diff != "" {
		t.Fatalf("set group mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_NoContext(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(Handler{slog.NewJSONHandler(&buf, nil)}).With("k", "v")
	log.Info("plain")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := rec["cmd"]; ok {
		t.Fatalf("unexpected cmd group: %v", rec)
	}
	if rec["k"] != "v" {
		t.Fatalf("With attrs lost: %v", rec)
	}
}
