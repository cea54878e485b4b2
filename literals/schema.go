package literals

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
)

// fingerprintNamespace scopes Fingerprint UUIDs to this package.
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ggoodman/literals-go/literals"))

// JSONSchema describes the set as a JSON Schema string enum, in construction
// order. The method name matches the hook invopop/jsonschema looks for, so a
// Set embedded in a reflected type is rendered as its enum.
func (s *Set[V]) JSONSchema() *jsonschema.Schema {
	enum := make([]any, len(s.models))
	for i, m := range s.models {
		enum[i] = string(m.Value)
	}
	return &jsonschema.Schema{Type: "string", Enum: enum}
}

type fingerprintEntry struct {
	Value    string `json:"value"`
	Accessor string `json:"accessor"`
}

// Fingerprint returns a name-based (SHA-1) UUID over the canonical JSON of the
// values and their accessor keys. Equal sets yield equal fingerprints across
// processes; reordering, renaming or re-keying a value changes it.
func (s *Set[V]) Fingerprint() uuid.UUID {
	entries := make([]fingerprintEntry, len(s.models))
	for i, m := range s.models {
		entries[i] = fingerprintEntry{Value: string(m.Value), Accessor: s.accessors[i]}
	}
	b, _ := json.Marshal(entries) // strings and fixed struct keys cannot fail
	return uuid.NewSHA1(fingerprintNamespace, b)
}
