package literals

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/ggoodman/literals-go/humanize"
)

// text extracts the string behind v when v's kind is string.
func text(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// Contains reports whether v is one of the permitted values. v may be a V, a
// plain string or any other value whose kind is string.
func (s *Set[V]) Contains(v any) bool {
	str, ok := text(v)
	if !ok {
		return false
	}
	_, ok = s.byValue[str]
	return ok
}

// Assert returns an *InvalidValueError when v is not a member.
func (s *Set[V]) Assert(v any) error { return s.AssertWithMessage(v, "") }

// AssertWithMessage is like Assert but uses msg as the error message when it
// is non-empty.
func (s *Set[V]) AssertWithMessage(v any, msg string) error {
	if !s.Contains(v) {
		return s.InvalidValue(v, msg)
	}
	return nil
}

// Parse returns v as a V after asserting membership.
func (s *Set[V]) Parse(v any) (V, error) { return s.ParseWithMessage(v, "") }

// ParseWithMessage is like Parse but uses msg as the error message when it is
// non-empty.
func (s *Set[V]) ParseWithMessage(v any, msg string) (V, error) {
	if err := s.AssertWithMessage(v, msg); err != nil {
		var zero V
		return zero, err
	}
	str, _ := text(v)
	return V(str), nil
}

// MustParse is like Parse but panics on error.
func (s *Set[V]) MustParse(v any) V {
	out, err := s.Parse(v)
	if err != nil {
		panic(err)
	}
	return out
}

// ParseJSON decodes a JSON string and parses it. It is a convenient body for
// an UnmarshalJSON method on an application's value type.
func (s *Set[V]) ParseJSON(data []byte) (V, error) {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var zero V
		return zero, fmt.Errorf("literals: decode value: %w", err)
	}
	return s.Parse(str)
}

// Model returns a copy of the model for v.
func (s *Set[V]) Model(v V) (Model[V], error) {
	if err := s.Assert(v); err != nil {
		return Model[V]{}, err
	}
	i, ok := s.byValue[string(v)]
	if !ok || i >= len(s.models) || s.models[i].Value != v {
		return Model[V]{}, fmt.Errorf("%w: value %q passed validation but has no model", ErrInternalInconsistency, string(v))
	}
	return s.models[i].clone(), nil
}

// ModelSafeOptions configures ModelSafe.
type ModelSafeOptions struct {
	// Strict makes an invalid value an error instead of a nil model.
	Strict bool
}

// ModelSafe looks up the model for an arbitrary value. An invalid value yields
// (nil, nil) unless opts.Strict is set, in which case it yields an
// *InvalidValueError.
func (s *Set[V]) ModelSafe(v any, opts ModelSafeOptions) (*Model[V], error) {
	if !s.Contains(v) {
		if opts.Strict {
			return nil, s.InvalidValue(v, "")
		}
		return nil, nil
	}
	str, _ := text(v)
	m, err := s.Model(V(str))
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// attributeValue names the pseudo-attribute every model carries. It resolves
// to the value as a plain string, whatever V is.
const attributeValue = "value"

func (m Model[V]) attribute(name string) (any, bool) {
	if name == attributeValue {
		return string(m.Value), true
	}
	a, ok := m.Attributes[name]
	return a, ok
}

// Attribute returns the named attribute of v's model. The name "value"
// always resolves to v as a plain string.
func (s *Set[V]) Attribute(v V, name string) (any, error) {
	m, err := s.Model(v)
	if err != nil {
		return nil, err
	}
	a, ok := m.attribute(name)
	if !ok {
		return nil, &UnknownAttributeError{Name: name, Value: string(v)}
	}
	return a, nil
}

// Attributes returns the named attribute of every model in construction
// order. Every model must carry the attribute.
func (s *Set[V]) Attributes(name string) ([]any, error) {
	out := make([]any, 0, len(s.models))
	for _, m := range s.models {
		a, ok := m.attribute(name)
		if !ok {
			return nil, &UnknownAttributeError{Name: name, Value: string(m.Value)}
		}
		out = append(out, a)
	}
	return out, nil
}

// AttributeAs is Attribute with the result asserted to T.
func AttributeAs[T any, V ~string](s *Set[V], v V, name string) (T, error) {
	var zero T
	a, err := s.Attribute(v, name)
	if err != nil {
		return zero, err
	}
	t, ok := a.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q of %q is %T, not %T", ErrAttributeType, name, string(v), a, zero)
	}
	return t, nil
}

// AttributesAs is Attributes with every element asserted to T.
func AttributesAs[T any, V ~string](s *Set[V], name string) ([]T, error) {
	raw, err := s.Attributes(name)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(raw))
	for i, a := range raw {
		t, ok := a.(T)
		if !ok {
			var zero T
			return nil, fmt.Errorf("%w: %q of %q is %T, not %T", ErrAttributeType, name, string(s.models[i].Value), a, zero)
		}
		out[i] = t
	}
	return out, nil
}

// InvalidValue builds the error reported for a rejected value. The message is
// msg when non-empty, else the WithInvalidValueMessage generator, else a
// generated sentence listing the permitted values.
func (s *Set[V]) InvalidValue(v any, msg string) *InvalidValueError {
	if msg == "" {
		if fn := s.settings.invalidMessage; fn != nil {
			msg = fn(s.strings(), v)
		} else {
			msg = s.invalidValueMessage(v)
		}
	}
	return &InvalidValueError{Value: v, Message: msg}
}

func (s *Set[V]) invalidValueMessage(v any) string {
	values := s.strings()
	switch len(values) {
	case 0:
		return ErrInternalInconsistency.Error() + ": the set has no values"
	case 1:
		return fmt.Sprintf("The value %s is not valid, it must be %s.", stringify(v), values[0])
	}
	return fmt.Sprintf("The value %s is not valid, it must be one of %s.",
		stringify(v), humanize.List(values, humanize.WithConjunction(humanize.Or)))
}

// stringify renders v the way a JSON encoder would, falling back to %v for
// values JSON cannot represent.
func stringify(v any) string {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
