// Package literals builds immutable, validated sets of permitted string values
// ("enumerated literals") with derived accessor keys, per-value metadata and
// subset derivation.
//
// A set is built once from either bare values or explicit models:
//
//	type Role string
//
//	var Roles = literals.MustNew[Role]("admin", "dev", "user")
//
//	Roles.MustGet("ADMIN")     // Role("admin")
//	Roles.Contains("root")     // false
//	r, err := Roles.Parse(in)  // r is a Role when err == nil
//
//	Sizes := literals.MustFromModels(
//	    literals.Model[string]{Value: "small", Accessor: "S", Attributes: map[string]any{"px": 8}},
//	    literals.Model[string]{Value: "large", Accessor: "L", Attributes: map[string]any{"px": 16}},
//	)
//	px, _ := literals.AttributeAs[int](Sizes, "small", "px") // 8
//
// Accessor Keys
//
// Each value gets an accessor key derived from the model's Accessor (when set)
// or its Value. Derivation applies, in order: case folding, hyphen
// replacement, space replacement. Defaults depend on how the set was built:
//
//	New         CaseUpper,     spaces -> "_", hyphens -> "_"
//	FromModels  CaseUnchanged, spaces -> "_", hyphens kept
//
// An explicitly supplied accessor is therefore altered as little as possible
// unless options say otherwise.
//
// Construction rejects empty sets, duplicate values and accessor collisions.
// All errors from construction match ErrConstruction.
//
// Concurrency
//
// A Set is never mutated after construction. Every method is safe for
// concurrent use, and slices or maps returned by methods are copies. Pick and
// Omit return new, independent sets.
package literals
