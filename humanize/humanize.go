package humanize

import (
	"fmt"
	"strings"
)

// Conjunction is the word placed before the final item of a list.
type Conjunction string

const (
	And Conjunction = "and"
	Or  Conjunction = "or"
)

type config struct {
	conjunction Conjunction
	oxfordComma bool
	delimiter   string
}

// Option customizes list rendering.
type Option func(*config)

// WithConjunction sets the word joining the last item. Defaults to And.
func WithConjunction(c Conjunction) Option {
	return func(cfg *config) {
		if c != "" {
			cfg.conjunction = c
		}
	}
}

// WithOxfordComma toggles the delimiter before the conjunction for lists of
// three or more items. Enabled by default.
func WithOxfordComma(enabled bool) Option {
	return func(cfg *config) { cfg.oxfordComma = enabled }
}

// WithDelimiter overrides the item delimiter. Surrounding whitespace is
// trimmed; a single space always follows the delimiter. Defaults to ",".
func WithDelimiter(d string) Option {
	return func(cfg *config) { cfg.delimiter = d }
}

// Quote formats a value wrapped in single quotes.
func Quote[T any](v T) string { return "'" + fmt.Sprint(v) + "'" }

// List renders values using fmt.Sprint for each item.
func List[T any](values []T, opts ...Option) string {
	return ListFunc(values, func(v T) string { return fmt.Sprint(v) }, opts...)
}

// ListFunc renders values using format for each item. A nil format falls back
// to fmt.Sprint.
func ListFunc[T any](values []T, format func(T) string, opts ...Option) string {
	cfg := config{conjunction: And, oxfordComma: true, delimiter: ","}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}

	switch len(values) {
	case 0:
		return ""
	case 1:
		return format(values[0])
	}

	delim := strings.TrimSpace(cfg.delimiter)
	head := make([]string, 0, len(values)-1)
	for _, v := range values[:len(values)-1] {
		head = append(head, format(v))
	}
	humanized := strings.Join(head, delim+" ")
	if len(values) >= 3 && cfg.oxfordComma {
		humanized += delim
	}
	return humanized + " " + strings.TrimSpace(string(cfg.conjunction)) + " " + format(values[len(values)-1])
}
