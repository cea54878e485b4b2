package query

import (
	"fmt"

	"github.com/ggoodman/literals-go/humanize"
)

// UnsupportedTypeError indicates a value that is not one of the query forms.
type UnsupportedTypeError struct {
	Value any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("query: unsupported query parameters type %T", e.Value)
}

// MissingKeysError lists required keys absent from parsed input, in the order
// they were requested.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return "query: the following query parameter(s) were not present in the provided input: " +
		humanize.ListFunc(e.Keys, humanize.Quote)
}

// InvalidURLError indicates input that had to be an absolute URL and was not.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("query: invalid URL %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("query: invalid URL %q: not absolute", e.URL)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }
