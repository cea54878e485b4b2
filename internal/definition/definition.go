// Package definition loads literal-set definition documents.
//
// A document is YAML (or JSON) listing named sets, each given either as bare
// values or as models with accessors and attributes:
//
//	sets:
//	  - name: roles
//	    values: [admin, dev, user]
//	    options: {accessorCase: lower, spaceReplacement: "-"}
//	  - name: sizes
//	    models:
//	      - {value: small, accessor: S, attributes: {px: 8}}
package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ggoodman/literals-go/literals"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyDocument = errors.New("definition: empty document")
	ErrInvalidSet    = errors.New("definition: invalid set")
)

// Document is a decoded definition file.
type Document struct {
	Sets []SetDefinition `yaml:"sets" json:"sets"`
}

// SetDefinition describes one set. Exactly one of Values and Models is set.
type SetDefinition struct {
	Name    string            `yaml:"name" json:"name"`
	Values  []string          `yaml:"values,omitempty" json:"values,omitempty"`
	Models  []ModelDefinition `yaml:"models,omitempty" json:"models,omitempty"`
	Options OptionsDefinition `yaml:"options,omitempty" json:"options,omitempty"`
}

// ModelDefinition mirrors literals.Model.
type ModelDefinition struct {
	Value      string         `yaml:"value" json:"value"`
	Accessor   string         `yaml:"accessor,omitempty" json:"accessor,omitempty"`
	Attributes map[string]any `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// OptionsDefinition holds accessor options by name. Nil fields keep the
// defaults for the set's shape.
type OptionsDefinition struct {
	AccessorCase      *string `yaml:"accessorCase,omitempty" json:"accessorCase,omitempty"`
	SpaceReplacement  *string `yaml:"spaceReplacement,omitempty" json:"spaceReplacement,omitempty"`
	HyphenReplacement *string `yaml:"hyphenReplacement,omitempty" json:"hyphenReplacement,omitempty"`
}

// Built is a constructed set and the name it was defined under.
type Built struct {
	Name string
	Set  *literals.Set[string]
}

// Decode reads a document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("definition: decode: %w", err)
	}
	return &doc, nil
}

// LoadFile decodes the document at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return Decode(bytes.NewReader(data))
}

// Build constructs every set in document order. The first failure is
// returned wrapped with the offending set's name.
func (d *Document) Build() ([]Built, error) {
	if d == nil || len(d.Sets) == 0 {
		return nil, ErrEmptyDocument
	}
	seen := make(map[string]struct{}, len(d.Sets))
	out := make([]Built, 0, len(d.Sets))
	for i, def := range d.Sets {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: set #%d has no name", ErrInvalidSet, i+1)
		}
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("%w: set %q is defined more than once", ErrInvalidSet, def.Name)
		}
		seen[def.Name] = struct{}{}

		set, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("definition: set %q: %w", def.Name, err)
		}
		out = append(out, Built{Name: def.Name, Set: set})
	}
	return out, nil
}

// Build constructs the set described by def.
func (def SetDefinition) Build() (*literals.Set[string], error) {
	opts, err := def.Options.options()
	if err != nil {
		return nil, err
	}
	switch {
	case len(def.Values) > 0 && len(def.Models) > 0:
		return nil, fmt.Errorf("%w: values and models are mutually exclusive", ErrInvalidSet)
	case len(def.Models) > 0:
		models := make([]literals.Model[string], len(def.Models))
		for i, m := range def.Models {
			models[i] = literals.Model[string]{Value: m.Value, Accessor: m.Accessor, Attributes: m.Attributes}
		}
		return literals.FromModels(models, opts...)
	case len(def.Values) > 0:
		return literals.New(def.Values, opts...)
	}
	return nil, fmt.Errorf("%w: one of values or models is required", ErrInvalidSet)
}
