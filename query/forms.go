package query

import (
	"net/url"

	"github.com/ggoodman/literals-go/literals"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Form names a query parameter representation.
type Form string

const (
	FormMap    Form = "map"
	FormObject Form = "object"
	FormRecord Form = "record"
	FormPairs  Form = "pairs"
	FormString Form = "string"
)

// Forms is the set of supported forms. Use Forms.Parse to validate
// user-supplied form names.
var Forms = literals.MustNew(FormMap, FormObject, FormRecord, FormPairs, FormString)

// OrderedMap is the "map" form.
type OrderedMap = orderedmap.OrderedMap[string, any]

// NewOrderedMap returns an empty "map" form value.
func NewOrderedMap() *OrderedMap { return orderedmap.New[string, any]() }

// Pair is one element of the "pairs" form.
type Pair struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// FormOf reports the form of params.
func FormOf(params any) (Form, error) {
	switch params.(type) {
	case *OrderedMap:
		return FormMap, nil
	case url.Values:
		return FormObject, nil
	case map[string]any, map[string]string:
		return FormRecord, nil
	case []Pair:
		return FormPairs, nil
	case string:
		return FormString, nil
	}
	return "", &UnsupportedTypeError{Value: params}
}
