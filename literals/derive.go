package literals

// Pick returns a new Set holding the values of s that also appear in vs, in
// the order of s. Models are carried over. Accessor options explicitly set on
// s are inherited unless overridden by opts; an invalid-value message
// generator is not inherited.
//
// Candidates in vs that are not members of s are ignored. A pick that keeps
// nothing returns ErrEmptySet.
func (s *Set[V]) Pick(vs []V, opts ...Option) (*Set[V], error) {
	keep := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		keep[string(v)] = struct{}{}
	}
	return s.derive(func(v V) bool {
		_, ok := keep[string(v)]
		return ok
	}, opts)
}

// Omit returns a new Set holding the values of s that do not appear in vs, in
// the order of s. Option inheritance follows Pick.
func (s *Set[V]) Omit(vs []V, opts ...Option) (*Set[V], error) {
	drop := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		drop[string(v)] = struct{}{}
	}
	return s.derive(func(v V) bool {
		_, ok := drop[string(v)]
		return !ok
	}, opts)
}

func (s *Set[V]) derive(keep func(V) bool, opts []Option) (*Set[V], error) {
	var models []Model[V]
	for _, m := range s.models {
		if keep(m.Value) {
			models = append(models, m.clone())
		}
	}
	return build(s.shape, models, applyOptions(s.settings.static(), opts))
}
