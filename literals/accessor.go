package literals

import "strings"

// DeriveAccessor computes the accessor key for name. It is a pure function of
// its inputs. Unknown option variants leave the corresponding step a no-op.
func DeriveAccessor(name string, opts AccessorOptions) string {
	accessor := name
	switch opts.Case {
	case CaseUpper:
		accessor = strings.ToUpper(accessor)
	case CaseLower:
		accessor = strings.ToLower(accessor)
	}
	if repl, apply, ok := opts.Hyphen.replacement(); ok && apply {
		accessor = strings.ReplaceAll(accessor, "-", repl)
	}
	if repl, ok := opts.Space.replacement(); ok {
		accessor = strings.ReplaceAll(accessor, " ", repl)
	}
	return accessor
}
