package literals

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is matched by every error that prevents a Set from
	// being built.
	ErrConstruction = errors.New("literals: invalid literal set")
	// ErrEmptySet is returned when a Set would contain no values.
	ErrEmptySet = fmt.Errorf("%w: at least one value is required", ErrConstruction)
	// ErrInvalidOption is returned for option variants outside the declared constants.
	ErrInvalidOption = fmt.Errorf("%w: unknown option", ErrConstruction)
	// ErrInvalidValue is matched by every *InvalidValueError.
	ErrInvalidValue = errors.New("literals: invalid value")
	// ErrInternalInconsistency signals a broken internal invariant. It is
	// never expected in practice.
	ErrInternalInconsistency = errors.New("literals: internal inconsistency")
	// ErrAttributeType is returned by AttributeAs and AttributesAs when an
	// attribute holds a different type than requested.
	ErrAttributeType = errors.New("literals: attribute type mismatch")
)

// DuplicateValueError indicates the same value was supplied twice.
type DuplicateValueError struct {
	Value string
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("literals: duplicate literal value %q; values must be unique", e.Value)
}

func (e *DuplicateValueError) Is(target error) bool { return target == ErrConstruction }

// AccessorCollisionError indicates two distinct values derive the same
// accessor key under the active options.
type AccessorCollisionError struct {
	First    string
	Second   string
	Accessor string
}

func (e *AccessorCollisionError) Error() string {
	return fmt.Sprintf("literals: values %q and %q map to the same accessor %q; accessors must be unique",
		e.First, e.Second, e.Accessor)
}

func (e *AccessorCollisionError) Is(target error) bool { return target == ErrConstruction }

// InvalidValueError indicates a candidate that is not a member of the set.
type InvalidValueError struct {
	Value   any
	Message string
}

func (e *InvalidValueError) Error() string { return e.Message }

func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }

// UnknownAttributeError indicates an attribute name that a model does not carry.
type UnknownAttributeError struct {
	Name  string
	Value string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("literals: attribute %q is not defined for value %q", e.Name, e.Value)
}
