package query

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_Defaults(t *testing.T) {
	got, err := Parse("https://example.com/search?q=go&page=2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(url.Values{"q": {"go"}, "page": {"2"}}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Form(t *testing.T) {
	got, err := Parse("/p?b=2&a=1", WithForm(FormPairs))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff([]Pair{{"b", "2"}, {"a", "1"}}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := Parse("/p", WithForm("xml")); err == nil {
		t.Fatalf("expected error for unknown form")
	}
}

func TestParse_Keys(t *testing.T) {
	got, err := Parse("?a=1&b=2&c=3", WithKeys("a", "c"), WithForm(FormRecord))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"a": "1", "c": "3"}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	_, err = Parse("?a=1", WithKeys("x", "a", "y"))
	var mk *MissingKeysError
	if !errors.As(err, &mk) {
		t.Fatalf("expected MissingKeysError, got %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, mk.Keys); diff != "" {
		t.Fatalf("missing keys mismatch (-want +got):\n%s", diff)
	}
	want := "query: the following query parameter(s) were not present in the provided input: 'x' and 'y'"
	if mk.Error() != want {
		t.Fatalf("message = %q, want %q", mk.Error(), want)
	}

	got, err = Parse("?a=1", WithKeys("x", "a"), WithStrict(false))
	if err != nil {
		t.Fatalf("lenient Parse: %v", err)
	}
	if diff := cmp.Diff(url.Values{"a": {"1"}}, got); diff != "" {
		t.Fatalf("lenient mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ValidURL(t *testing.T) {
	got, err := Parse("https://example.com/?a=1?b", WithValidURL(), WithForm(FormRecord))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"a": "1?b"}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	_, err = Parse("/relative?a=1", WithValidURL())
	var iu *InvalidURLError
	if !errors.As(err, &iu) || iu.URL != "/relative?a=1" {
		t.Fatalf("expected InvalidURLError, got %v", err)
	}
	if _, err := Parse("http://[::1", WithValidURL()); !errors.As(err, &iu) || iu.Err == nil {
		t.Fatalf("expected wrapped parse error, got %v", err)
	}
}

func TestParse_NonStringInput(t *testing.T) {
	got, err := Parse(map[string]any{"a": 1, "b": nil}, WithValidURL())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(url.Values{"a": {"1"}}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
