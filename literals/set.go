package literals

import (
	"fmt"
	"maps"
	"slices"
)

// Model is one permitted value plus optional metadata. Accessor, when
// non-empty, replaces Value as the source of the accessor key.
type Model[V ~string] struct {
	Value      V
	Accessor   string
	Attributes map[string]any
}

func (m Model[V]) clone() Model[V] {
	m.Attributes = maps.Clone(m.Attributes)
	return m
}

// Set is an immutable set of permitted values. Build one with New or
// FromModels.
type Set[V ~string] struct {
	models     []Model[V]
	accessors  []string // parallel to models
	byValue    map[string]int
	byAccessor map[string]int

	shape    shape
	settings settings
	resolved AccessorOptions
}

// New builds a Set from bare values. Each value becomes a model carrying only
// its Value.
func New[V ~string](values []V, opts ...Option) (*Set[V], error) {
	models := make([]Model[V], len(values))
	for i, v := range values {
		models[i] = Model[V]{Value: v}
	}
	return build(shapeValues, models, applyOptions(settings{}, opts))
}

// MustNew is like New but panics on error. It suits package-level variables.
func MustNew[V ~string](values ...V) *Set[V] {
	s, err := New(values)
	if err != nil {
		panic(err)
	}
	return s
}

// FromModels builds a Set from explicit models.
func FromModels[V ~string](models []Model[V], opts ...Option) (*Set[V], error) {
	cp := make([]Model[V], len(models))
	for i, m := range models {
		cp[i] = m.clone()
	}
	return build(shapeModels, cp, applyOptions(settings{}, opts))
}

// MustFromModels is like FromModels but panics on error.
func MustFromModels[V ~string](models ...Model[V]) *Set[V] {
	s, err := FromModels(models)
	if err != nil {
		panic(err)
	}
	return s
}

func applyOptions(base settings, opts []Option) settings {
	for _, o := range opts {
		if o != nil {
			o(&base)
		}
	}
	return base
}

// build takes ownership of models.
func build[V ~string](sh shape, models []Model[V], st settings) (*Set[V], error) {
	if len(models) == 0 {
		return nil, ErrEmptySet
	}
	resolved := st.resolve(sh)
	if err := resolved.validate(); err != nil {
		return nil, err
	}

	s := &Set[V]{
		models:     models,
		accessors:  make([]string, len(models)),
		byValue:    make(map[string]int, len(models)),
		byAccessor: make(map[string]int, len(models)),
		shape:      sh,
		settings:   st,
		resolved:   resolved,
	}
	for i, m := range models {
		value := string(m.Value)
		if _, dup := s.byValue[value]; dup {
			return nil, &DuplicateValueError{Value: value}
		}
		source := m.Accessor
		if source == "" {
			source = value
		}
		accessor := DeriveAccessor(source, resolved)
		if j, taken := s.byAccessor[accessor]; taken {
			return nil, &AccessorCollisionError{First: string(models[j].Value), Second: value, Accessor: accessor}
		}
		s.byValue[value] = i
		s.byAccessor[accessor] = i
		s.accessors[i] = accessor
	}
	return s, nil
}

// Len returns the number of values.
func (s *Set[V]) Len() int { return len(s.models) }

// Values returns the permitted values in construction order.
func (s *Set[V]) Values() []V {
	out := make([]V, len(s.models))
	for i, m := range s.models {
		out[i] = m.Value
	}
	return out
}

func (s *Set[V]) strings() []string {
	out := make([]string, len(s.models))
	for i, m := range s.models {
		out[i] = string(m.Value)
	}
	return out
}

// Models returns a copy of the models in construction order.
func (s *Set[V]) Models() []Model[V] {
	out := make([]Model[V], len(s.models))
	for i, m := range s.models {
		out[i] = m.clone()
	}
	return out
}

// Options returns the resolved accessor options.
func (s *Set[V]) Options() AccessorOptions { return s.resolved }

// HasInvalidValueMessage reports whether WithInvalidValueMessage was applied.
func (s *Set[V]) HasInvalidValueMessage() bool { return s.settings.invalidMessage != nil }

// Get returns the value behind an accessor key.
func (s *Set[V]) Get(accessor string) (V, bool) {
	i, ok := s.byAccessor[accessor]
	if !ok {
		var zero V
		return zero, false
	}
	return s.models[i].Value, true
}

// MustGet is like Get but panics when the accessor is unknown.
func (s *Set[V]) MustGet(accessor string) V {
	v, ok := s.Get(accessor)
	if !ok {
		panic(fmt.Sprintf("literals: unknown accessor %q", accessor))
	}
	return v
}

// AccessorOf returns the accessor key derived for v.
func (s *Set[V]) AccessorOf(v V) (string, bool) {
	i, ok := s.byValue[string(v)]
	if !ok {
		return "", false
	}
	return s.accessors[i], true
}

// AccessorKeys returns the accessor keys in construction order.
func (s *Set[V]) AccessorKeys() []string { return slices.Clone(s.accessors) }

// Accessors returns a copy of the accessor table.
func (s *Set[V]) Accessors() map[string]V {
	out := make(map[string]V, len(s.accessors))
	for i, a := range s.accessors {
		out[a] = s.models[i].Value
	}
	return out
}
