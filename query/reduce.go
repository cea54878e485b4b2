package query

import (
	"fmt"
	"iter"
	"net/url"
	"reflect"
	"strconv"
)

// accumulator folds key/value pairs into one form.
type accumulator interface {
	add(key string, value any)
	result() any
}

func newAccumulator(form Form) (accumulator, error) {
	switch form {
	case FormMap:
		return &mapAccumulator{m: NewOrderedMap()}, nil
	case FormObject:
		return &valuesAccumulator{v: url.Values{}}, nil
	case FormRecord:
		return &recordAccumulator{m: map[string]any{}}, nil
	case FormPairs:
		return &pairsAccumulator{p: []Pair{}}, nil
	case FormString:
		return &stringAccumulator{valuesAccumulator{v: url.Values{}}}, nil
	}
	return nil, Forms.InvalidValue(form, "")
}

// mapAccumulator replaces values in place, keeping a key's first position.
type mapAccumulator struct{ m *OrderedMap }

func (a *mapAccumulator) add(k string, v any) { a.m.Set(k, v) }
func (a *mapAccumulator) result() any         { return a.m }

type valuesAccumulator struct{ v url.Values }

func (a *valuesAccumulator) add(k string, v any) {
	if s, ok := formatValue(v); ok {
		a.v.Set(k, s)
	}
}
func (a *valuesAccumulator) result() any { return a.v }

type recordAccumulator struct{ m map[string]any }

func (a *recordAccumulator) add(k string, v any) { a.m[k] = v }
func (a *recordAccumulator) result() any         { return a.m }

type pairsAccumulator struct{ p []Pair }

func (a *pairsAccumulator) add(k string, v any) { a.p = append(a.p, Pair{Key: k, Value: v}) }
func (a *pairsAccumulator) result() any         { return a.p }

type stringAccumulator struct{ valuesAccumulator }

// result is "?" followed by the encoded query, or "" when nothing was added,
// so the output reads back through Iterate.
func (a *stringAccumulator) result() any {
	encoded := a.v.Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}

// formatValue renders scalars the way they appear in a query string. Nil and
// non-scalar values are reported as absent.
func formatValue(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case fmt.Stringer:
		return v.String(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}

func fold(acc accumulator, seqs ...iter.Seq2[string, any]) any {
	for _, seq := range seqs {
		for k, v := range seq {
			acc.add(k, v)
		}
	}
	return acc.result()
}

// Transform converts params into form. The input is never modified.
func Transform(params any, form Form) (any, error) {
	seq, err := Iterate(params)
	if err != nil {
		return nil, err
	}
	acc, err := newAccumulator(form)
	if err != nil {
		return nil, err
	}
	return fold(acc, seq), nil
}

// ToMap converts params to the "map" form.
func ToMap(params any) (*OrderedMap, error) { return transformAs[*OrderedMap](params, FormMap) }

// ToValues converts params to the "object" form.
func ToValues(params any) (url.Values, error) { return transformAs[url.Values](params, FormObject) }

// ToRecord converts params to the "record" form.
func ToRecord(params any) (map[string]any, error) {
	return transformAs[map[string]any](params, FormRecord)
}

// ToPairs converts params to the "pairs" form.
func ToPairs(params any) ([]Pair, error) { return transformAs[[]Pair](params, FormPairs) }

// ToString converts params to "?" followed by the encoded query, or "" when
// params is empty.
func ToString(params any) (string, error) { return transformAs[string](params, FormString) }

func transformAs[T any](params any, form Form) (T, error) {
	var zero T
	out, err := Transform(params, form)
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}
