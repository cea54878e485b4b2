package definition

import (
	"fmt"

	"github.com/ggoodman/literals-go/literals"
)

const optionAttr = "option"

func optionModel(name string, opt any) literals.Model[string] {
	return literals.Model[string]{Value: name, Attributes: map[string]any{optionAttr: opt}}
}

// Names accepted for each accessor option.
var (
	CaseNames = literals.MustFromModels(
		optionModel("upper", literals.CaseUpper),
		optionModel("lower", literals.CaseLower),
		optionModel("none", literals.CaseUnchanged),
	)
	SpaceNames = literals.MustFromModels(
		optionModel("_", literals.SpaceUnderscore),
		optionModel("-", literals.SpaceHyphen),
		optionModel("", literals.SpaceRemove),
	)
	HyphenNames = literals.MustFromModels(
		optionModel("keep", literals.HyphenKeep),
		optionModel("_", literals.HyphenUnderscore),
		optionModel("", literals.HyphenRemove),
	)
)

func (o OptionsDefinition) options() ([]literals.Option, error) {
	var opts []literals.Option
	if o.AccessorCase != nil {
		c, err := lookupOption[literals.Case](CaseNames, "accessorCase", *o.AccessorCase)
		if err != nil {
			return nil, err
		}
		opts = append(opts, literals.WithAccessorCase(c))
	}
	if o.SpaceReplacement != nil {
		r, err := lookupOption[literals.SpaceReplacement](SpaceNames, "spaceReplacement", *o.SpaceReplacement)
		if err != nil {
			return nil, err
		}
		opts = append(opts, literals.WithSpaceReplacement(r))
	}
	if o.HyphenReplacement != nil {
		r, err := lookupOption[literals.HyphenReplacement](HyphenNames, "hyphenReplacement", *o.HyphenReplacement)
		if err != nil {
			return nil, err
		}
		opts = append(opts, literals.WithHyphenReplacement(r))
	}
	return opts, nil
}

func lookupOption[T any](names *literals.Set[string], field, name string) (T, error) {
	var zero T
	if err := names.Assert(name); err != nil {
		return zero, fmt.Errorf("%w: %s: %w", literals.ErrInvalidOption, field, err)
	}
	return literals.AttributeAs[T](names, name, optionAttr)
}
