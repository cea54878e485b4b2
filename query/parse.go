package query

import (
	"iter"
	"net/url"
	"slices"
)

type parseConfig struct {
	keys     []string
	strict   *bool
	form     Form
	validURL bool
}

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

// WithKeys restricts the result to the named keys. Unless WithStrict(false)
// is also given, every key must be present.
func WithKeys(keys ...string) ParseOption {
	return func(c *parseConfig) { c.keys = append(c.keys, keys...) }
}

// WithStrict controls whether keys requested with WithKeys are required.
func WithStrict(strict bool) ParseOption {
	return func(c *parseConfig) { c.strict = &strict }
}

// WithForm selects the result form. The default is FormObject.
func WithForm(form Form) ParseOption {
	return func(c *parseConfig) { c.form = form }
}

// WithValidURL requires string input to be an absolute URL. The query is
// then taken from the parsed URL rather than by splitting on '?'.
func WithValidURL() ParseOption {
	return func(c *parseConfig) { c.validURL = true }
}

// Parse reads query parameters from base, which may be any form, and returns
// them in the configured form.
func Parse(base any, opts ...ParseOption) (any, error) {
	cfg := parseConfig{form: FormObject}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if _, err := Forms.Parse(cfg.form); err != nil {
		return nil, err
	}

	seq, err := source(base, cfg.validURL)
	if err != nil {
		return nil, err
	}

	if len(cfg.keys) > 0 {
		seq, err = filterKeys(seq, cfg.keys, cfg.strict == nil || *cfg.strict)
		if err != nil {
			return nil, err
		}
	}

	acc, err := newAccumulator(cfg.form)
	if err != nil {
		return nil, err
	}
	return fold(acc, seq), nil
}

func source(base any, validURL bool) (iter.Seq2[string, any], error) {
	s, ok := base.(string)
	if !validURL || !ok {
		return Iterate(base)
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, &InvalidURLError{URL: s, Err: err}
	}
	if !u.IsAbs() {
		return nil, &InvalidURLError{URL: s}
	}
	return pairsSeq(parseRawQuery(u.RawQuery)), nil
}

// filterKeys drains seq once so presence can be checked before folding.
func filterKeys(seq iter.Seq2[string, any], keys []string, strict bool) (iter.Seq2[string, any], error) {
	var kept []Pair
	present := make(map[string]bool, len(keys))
	for k, v := range seq {
		if slices.Contains(keys, k) {
			present[k] = true
			kept = append(kept, Pair{Key: k, Value: v})
		}
	}
	if strict {
		var missing []string
		for _, k := range keys {
			if !present[k] && !slices.Contains(missing, k) {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			return nil, &MissingKeysError{Keys: missing}
		}
	}
	return pairsSeq(kept), nil
}
