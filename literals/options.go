package literals

import "fmt"

// Case controls case folding of accessor keys.
type Case uint8

const (
	// CaseUnchanged leaves the case of the accessor source untouched.
	CaseUnchanged Case = iota
	// CaseUpper upper-cases the accessor source.
	CaseUpper
	// CaseLower lower-cases the accessor source.
	CaseLower
)

func (c Case) String() string {
	switch c {
	case CaseUnchanged:
		return "none"
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	}
	return fmt.Sprintf("Case(%d)", uint8(c))
}

// SpaceReplacement controls what every space in an accessor source becomes.
type SpaceReplacement uint8

const (
	SpaceUnderscore SpaceReplacement = iota // " " -> "_"
	SpaceHyphen                             // " " -> "-"
	SpaceRemove                             // " " -> ""
)

func (r SpaceReplacement) replacement() (string, bool) {
	switch r {
	case SpaceUnderscore:
		return "_", true
	case SpaceHyphen:
		return "-", true
	case SpaceRemove:
		return "", true
	}
	return "", false
}

func (r SpaceReplacement) String() string {
	if s, ok := r.replacement(); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("SpaceReplacement(%d)", uint8(r))
}

// HyphenReplacement controls what every hyphen in an accessor source becomes.
type HyphenReplacement uint8

const (
	HyphenKeep       HyphenReplacement = iota // hyphens untouched
	HyphenUnderscore                          // "-" -> "_"
	HyphenRemove                              // "-" -> ""
)

func (r HyphenReplacement) replacement() (repl string, apply bool, ok bool) {
	switch r {
	case HyphenKeep:
		return "", false, true
	case HyphenUnderscore:
		return "_", true, true
	case HyphenRemove:
		return "", true, true
	}
	return "", false, false
}

func (r HyphenReplacement) String() string {
	s, apply, ok := r.replacement()
	switch {
	case !ok:
		return fmt.Sprintf("HyphenReplacement(%d)", uint8(r))
	case !apply:
		return "keep"
	}
	return fmt.Sprintf("%q", s)
}

// AccessorOptions is the fully resolved accessor derivation configuration.
type AccessorOptions struct {
	Case   Case
	Space  SpaceReplacement
	Hyphen HyphenReplacement
}

func (o AccessorOptions) validate() error {
	if o.Case > CaseLower {
		return fmt.Errorf("%w: accessor case %s", ErrInvalidOption, o.Case)
	}
	if _, ok := o.Space.replacement(); !ok {
		return fmt.Errorf("%w: space replacement %s", ErrInvalidOption, o.Space)
	}
	if _, _, ok := o.Hyphen.replacement(); !ok {
		return fmt.Errorf("%w: hyphen replacement %s", ErrInvalidOption, o.Hyphen)
	}
	return nil
}

// InvalidValueMessageFunc renders the message of an InvalidValueError from
// the permitted values and the rejected value.
type InvalidValueMessageFunc func(values []string, attempted any) string

// shape records which constructor built a set. It only selects defaults.
type shape uint8

const (
	shapeValues shape = iota
	shapeModels
)

var (
	defaultValuesOptions = AccessorOptions{Case: CaseUpper, Space: SpaceUnderscore, Hyphen: HyphenUnderscore}
	defaultModelsOptions = AccessorOptions{Case: CaseUnchanged, Space: SpaceUnderscore, Hyphen: HyphenKeep}
)

func (s shape) defaults() AccessorOptions {
	if s == shapeModels {
		return defaultModelsOptions
	}
	return defaultValuesOptions
}

// settings holds what the caller explicitly asked for. Nil fields fall back to
// the shape defaults.
type settings struct {
	accessorCase   *Case
	space          *SpaceReplacement
	hyphen         *HyphenReplacement
	invalidMessage InvalidValueMessageFunc
}

func (s settings) resolve(sh shape) AccessorOptions {
	o := sh.defaults()
	if s.accessorCase != nil {
		o.Case = *s.accessorCase
	}
	if s.space != nil {
		o.Space = *s.space
	}
	if s.hyphen != nil {
		o.Hyphen = *s.hyphen
	}
	return o
}

// static returns the accessor settings with the invalid-value message
// dropped, as inherited by Pick and Omit.
func (s settings) static() settings {
	return settings{accessorCase: s.accessorCase, space: s.space, hyphen: s.hyphen}
}

// Option customizes construction of a Set.
type Option func(*settings)

// WithAccessorCase sets case folding for accessor keys.
func WithAccessorCase(c Case) Option {
	return func(s *settings) { s.accessorCase = &c }
}

// WithSpaceReplacement sets what spaces become in accessor keys.
func WithSpaceReplacement(r SpaceReplacement) Option {
	return func(s *settings) { s.space = &r }
}

// WithHyphenReplacement sets what hyphens become in accessor keys.
func WithHyphenReplacement(r HyphenReplacement) Option {
	return func(s *settings) { s.hyphen = &r }
}

// WithInvalidValueMessage overrides the generated InvalidValueError message.
// An explicit message passed to AssertWithMessage, ParseWithMessage or
// InvalidValue still takes precedence.
func WithInvalidValueMessage(fn InvalidValueMessageFunc) Option {
	return func(s *settings) { s.invalidMessage = fn }
}
