package query

import (
	"iter"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Iterate yields every key/value pair of params in a deterministic order.
// A nil params yields nothing.
func Iterate(params any) (iter.Seq2[string, any], error) {
	switch p := params.(type) {
	case nil:
		return func(func(string, any) bool) {}, nil
	case *OrderedMap:
		return func(yield func(string, any) bool) {
			if p == nil {
				return
			}
			for pair := p.Oldest(); pair != nil; pair = pair.Next() {
				if !yield(pair.Key, pair.Value) {
					return
				}
			}
		}, nil
	case url.Values:
		return func(yield func(string, any) bool) {
			for _, k := range slices.Sorted(maps.Keys(p)) {
				for _, v := range p[k] {
					if !yield(k, v) {
						return
					}
				}
			}
		}, nil
	case map[string]any:
		return func(yield func(string, any) bool) {
			for _, k := range slices.Sorted(maps.Keys(p)) {
				if !yield(k, p[k]) {
					return
				}
			}
		}, nil
	case map[string]string:
		return func(yield func(string, any) bool) {
			for _, k := range slices.Sorted(maps.Keys(p)) {
				if !yield(k, p[k]) {
					return
				}
			}
		}, nil
	case []Pair:
		return func(yield func(string, any) bool) {
			for _, pair := range p {
				if !yield(pair.Key, pair.Value) {
					return
				}
			}
		}, nil
	case string:
		return pairsSeq(splitQuery(p)), nil
	}
	return nil, &UnsupportedTypeError{Value: params}
}

func pairsSeq(pairs []Pair) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, pair := range pairs {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// splitQuery extracts the query of a path or URL. Input without a '?' or with
// more than one has no query.
func splitQuery(s string) []Pair {
	if strings.Count(s, "?") != 1 {
		return nil
	}
	_, raw, _ := strings.Cut(s, "?")
	return parseRawQuery(raw)
}

// parseRawQuery decodes "a=1&b=2" preserving order and duplicates. Malformed
// escapes are kept verbatim rather than rejected.
func parseRawQuery(raw string) []Pair {
	var out []Pair
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		out = append(out, Pair{Key: unescape(k), Value: unescape(v)})
	}
	return out
}

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return u
}
