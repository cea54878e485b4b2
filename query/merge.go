package query

import (
	"iter"
	"net/url"
	"strings"
)

// Merge combines parameter sets left to right; later values win. The result
// has the form of first and no input is modified. When first is a string, its
// path and fragment are kept around the merged query.
func Merge(first, second any, rest ...any) (any, error) {
	form, err := FormOf(first)
	if err != nil {
		return nil, err
	}
	all := append([]any{first, second}, rest...)
	seqs := make([]iter.Seq2[string, any], 0, len(all))
	for _, p := range all {
		seq, err := Iterate(p)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
	acc, err := newAccumulator(form)
	if err != nil {
		return nil, err
	}
	out := fold(acc, seqs...)
	if s, ok := first.(string); ok {
		return withQuery(s, out.(string)), nil
	}
	return out, nil
}

type addConfig struct {
	replace bool
}

// AddOption configures AddToURL and AddToURLObject.
type AddOption func(*addConfig)

// WithReplaceExisting discards the URL's existing query instead of merging
// into it.
func WithReplaceExisting() AddOption {
	return func(c *addConfig) { c.replace = true }
}

// AddToURL merges params into the query of u, a path or URL string. Any
// fragment is preserved. When the merged query is empty u is returned as is.
func AddToURL(u string, params any, opts ...AddOption) (string, error) {
	cfg := applyAdd(opts)

	rest, _, _ := strings.Cut(u, "#")
	existing := url.Values{}
	if !cfg.replace {
		existing = valuesFrom(splitQuery(rest))
	}
	encoded, err := mergeEncoded(existing, params)
	if err != nil {
		return "", err
	}
	if encoded == "" {
		return u, nil
	}

	return withQuery(u, "?"+encoded), nil
}

// withQuery replaces the query of the path or URL s with q, which is empty or
// starts with '?'. A fragment on s is kept.
func withQuery(s, q string) string {
	rest, fragment, hasFragment := strings.Cut(s, "#")
	base, _, _ := strings.Cut(rest, "?")
	out := base + q
	if hasFragment {
		out += "#" + fragment
	}
	return out
}

// AddToURLObject is AddToURL for a parsed URL. u is not modified.
func AddToURLObject(u *url.URL, params any, opts ...AddOption) (*url.URL, error) {
	if u == nil {
		return nil, &InvalidURLError{URL: ""}
	}
	cfg := applyAdd(opts)

	existing := url.Values{}
	if !cfg.replace {
		existing = valuesFrom(parseRawQuery(u.RawQuery))
	}
	encoded, err := mergeEncoded(existing, params)
	if err != nil {
		return nil, err
	}
	out := *u
	if encoded != "" {
		out.RawQuery = encoded
		out.ForceQuery = false
	}
	return &out, nil
}

func applyAdd(opts []AddOption) addConfig {
	var cfg addConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}

func valuesFrom(pairs []Pair) url.Values {
	acc := &valuesAccumulator{v: url.Values{}}
	return fold(acc, pairsSeq(pairs)).(url.Values)
}

func mergeEncoded(existing url.Values, params any) (string, error) {
	merged, err := Merge(existing, params)
	if err != nil {
		return "", err
	}
	return merged.(url.Values).Encode(), nil
}
