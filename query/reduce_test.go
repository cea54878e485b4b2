package query

import (
	"errors"
	"net/url"
	"testing"

	"github.com/ggoodman/literals-go/literals"
	"github.com/google/go-cmp/cmp"
)

func TestTransform(t *testing.T) {
	src := []Pair{{"a", "1"}, {"b", true}, {"a", 2}, {"n", nil}, {"f", 0.25}}

	values, err := ToValues(src)
	if err != nil {
		t.Fatalf("ToValues: %v", err)
	}
	if diff := cmp.Diff(url.Values{"a": {"2"}, "b": {"true"}, "f": {"0.25"}}, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	record, err := ToRecord(src)
	if err != nil {
		t.Fatalf("ToRecord: %v", err)
	}
	want := map[string]any{"a": 2, "b": true, "n": nil, "f": 0.25}
	if diff := cmp.Diff(want, record); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}

	pairs, err := ToPairs(src)
	if err != nil {
		t.Fatalf("ToPairs: %v", err)
	}
	if diff := cmp.Diff(src, pairs); diff != "" {
		t.Fatalf("pairs mismatch (-want +got):\n%s", diff)
	}

	s, err := ToString(src)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	if s != "?a=2&b=true&f=0.25" {
		t.Fatalf("string = %q", s)
	}

	m, err := ToMap(src)
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	var keys []string
	for p := m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	if diff := cmp.Diff([]string{"a", "b", "n", "f"}, keys); diff != "" {
		t.Fatalf("map keeps first position (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("a"); v != 2 {
		t.Fatalf("map a = %v, want 2", v)
	}
}

func TestTransform_InvalidForm(t *testing.T) {
	_, err := Transform("?a=1", Form("json"))
	if !errors.Is(err, literals.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestTransform_DoesNotModifyInput(t *testing.T) {
	in := url.Values{"a": {"1", "2"}}
	if _, err := ToRecord(in); err != nil {
		t.Fatalf("ToRecord: %v", err)
	}
	if diff := cmp.Diff(url.Values{"a": {"1", "2"}}, in); diff != "" {
		t.Fatalf("input modified (-want +got):\n%s", diff)
	}
}

type level int

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{"x", "x", true},
		{false, "false", true},
		{-3, "-3", true},
		{uint8(7), "7", true},
		{level(2), "2", true},
		{float32(1.5), "1.5", true},
		{1e6, "1000000", true},
		{nil, "", false},
		{[]int{1}, "", false},
	}
	for _, tt := range tests {
		got, ok := formatValue(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("formatValue(%#v) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
