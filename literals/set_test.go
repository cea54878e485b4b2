package literals

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type role string

func TestNew_DefaultAccessors(t *testing.T) {
	roles, err := New([]role{"admin", "dev", "user"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if diff := cmp.Diff([]role{"admin", "dev", "user"}, roles.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	want := map[string]role{"ADMIN": "admin", "DEV": "dev", "USER": "user"}
	if diff := cmp.Diff(want, roles.Accessors()); diff != "" {
		t.Fatalf("accessors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ADMIN", "DEV", "USER"}, roles.AccessorKeys()); diff != "" {
		t.Fatalf("accessor keys mismatch (-want +got):\n%s", diff)
	}
	if got := roles.MustGet("DEV"); got != "dev" {
		t.Fatalf("MustGet(DEV) = %q", got)
	}
	if _, ok := roles.Get("ROOT"); ok {
		t.Fatalf("Get(ROOT) should miss")
	}
	if a, ok := roles.AccessorOf("user"); !ok || a != "USER" {
		t.Fatalf("AccessorOf(user) = %q, %v", a, ok)
	}
	if got := roles.Options(); got != defaultValuesOptions {
		t.Fatalf("Options() = %+v, want %+v", got, defaultValuesOptions)
	}
	if roles.Len() != 3 {
		t.Fatalf("Len() = %d", roles.Len())
	}
}

func TestFromModels_DefaultAccessors(t *testing.T) {
	s, err := FromModels([]Model[string]{{Value: "Multi Word"}, {Value: "kebab-case"}})
	if err != nil {
		t.Fatalf("FromModels: %v", err)
	}
	want := []string{"Multi_Word", "kebab-case"}
	if diff := cmp.Diff(want, s.AccessorKeys()); diff != "" {
		t.Fatalf("accessor keys mismatch (-want +got):\n%s", diff)
	}
}

func TestFromModels_ExplicitAccessor(t *testing.T) {
	s, err := FromModels([]Model[string]{
		{Value: "small", Accessor: "S"},
		{Value: "extra large", Accessor: "Extra Large"},
		{Value: "medium"},
	})
	if err != nil {
		t.Fatalf("FromModels: %v", err)
	}
	for accessor, value := range map[string]string{"S": "small", "Extra_Large": "extra large", "medium": "medium"} {
		if got, ok := s.Get(accessor); !ok || got != value {
			t.Errorf("Get(%q) = %q, %v; want %q", accessor, got, ok, value)
		}
	}
}

func TestNew_ExplicitOptionsOverrideShapeDefaults(t *testing.T) {
	s, err := New([]string{"foo-bar baz"},
		WithAccessorCase(CaseUnchanged),
		WithHyphenReplacement(HyphenKeep),
		WithSpaceReplacement(SpaceRemove),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.AccessorKeys()[0]; got != "foo-barbaz" {
		t.Fatalf("accessor = %q, want foo-barbaz", got)
	}
}

func TestNew_Empty(t *testing.T) {
	_, err := New([]string{})
	if !errors.Is(err, ErrEmptySet) {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
	if !errors.Is(err, ErrConstruction) {
		t.Fatalf("ErrEmptySet should match ErrConstruction")
	}
}

func TestNew_DuplicateValue(t *testing.T) {
	_, err := New([]string{"a", "b", "a"})
	var dup *DuplicateValueError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateValueError, got %v", err)
	}
	if dup.Value != "a" {
		t.Fatalf("duplicate value = %q", dup.Value)
	}
	if !errors.Is(err, ErrConstruction) {
		t.Fatalf("duplicate error should match ErrConstruction")
	}
	var col *AccessorCollisionError
	if errors.As(err, &col) {
		t.Fatalf("duplicate must not be reported as a collision")
	}
}

func TestFromModels_DuplicateValueWithDistinctAccessors(t *testing.T) {
	_, err := FromModels([]Model[string]{{Value: "a", Accessor: "X"}, {Value: "a", Accessor: "Y"}})
	var dup *DuplicateValueError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateValueError, got %v", err)
	}
}

func TestNew_AccessorCollision(t *testing.T) {
	_, err := New([]string{"a-b", "a_b"}, WithHyphenReplacement(HyphenUnderscore))
	var col *AccessorCollisionError
	if !errors.As(err, &col) {
		t.Fatalf("expected AccessorCollisionError, got %v", err)
	}
	want := AccessorCollisionError{First: "a-b", Second: "a_b", Accessor: "A_B"}
	if *col != want {
		t.Fatalf("collision = %+v, want %+v", *col, want)
	}
	if !errors.Is(err, ErrConstruction) {
		t.Fatalf("collision should match ErrConstruction")
	}
	var dup *DuplicateValueError
	if errors.As(err, &dup) {
		t.Fatalf("collision must not be reported as a duplicate")
	}
}

func TestNew_CaseCollision(t *testing.T) {
	if _, err := New([]string{"Admin", "admin"}); err == nil {
		t.Fatalf("expected collision under upper-casing")
	}
	if _, err := New([]string{"Admin", "admin"}, WithAccessorCase(CaseUnchanged)); err != nil {
		t.Fatalf("unexpected error without case folding: %v", err)
	}
}

func TestNew_InvalidOption(t *testing.T) {
	_, err := New([]string{"a"}, WithAccessorCase(Case(9)))
	if !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestNew_NilOptionIgnored(t *testing.T) {
	if _, err := New([]string{"a"}, nil); err != nil {
		t.Fatalf("New with nil option: %v", err)
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustNew("a", "a")
}

func TestSet_DoesNotAliasInput(t *testing.T) {
	values := []string{"a", "b"}
	s, err := New(values)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	values[0] = "z"
	if !s.Contains("a") || s.Contains("z") {
		t.Fatalf("set should not observe mutation of its input slice")
	}

	attrs := map[string]any{"label": "A"}
	m, err := FromModels([]Model[string]{{Value: "a", Attributes: attrs}})
	if err != nil {
		t.Fatalf("FromModels: %v", err)
	}
	attrs["label"] = "mutated"
	got, _ := m.Attribute("a", "label")
	if got != "A" {
		t.Fatalf("attribute = %v, want A", got)
	}

	out := s.Values()
	out[0] = "mutated"
	if s.Values()[0] != "a" {
		t.Fatalf("Values() must return a copy")
	}
	models := m.Models()
	models[0].Attributes["label"] = "mutated"
	if got, _ := m.Attribute("a", "label"); got != "A" {
		t.Fatalf("Models() must return copies, got %v", got)
	}
}

func TestNew_PropertyValuesPreserveOrder(t *testing.T) {
	inputs := [][]string{
		{"x"},
		{"c", "b", "a"},
		{"one", "two words", "three-part-name", "FOUR"},
	}
	for _, in := range inputs {
		s, err := New(in)
		if err != nil {
			t.Fatalf("New(%v): %v", in, err)
		}
		if diff := cmp.Diff(in, s.Values()); diff != "" {
			t.Fatalf("values mismatch (-want +got):\n%s", diff)
		}
		for _, v := range in {
			if !s.Contains(v) {
				t.Fatalf("Contains(%q) = false", v)
			}
			m, err := s.Model(v)
			if err != nil || m.Value != v {
				t.Fatalf("Model(%q) = %+v, %v", v, m, err)
			}
		}
	}
}
