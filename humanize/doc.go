// Package humanize renders sequences as natural-language lists, e.g.
//
//	humanize.List([]string{"a", "b", "c"})                                  // "a, b, and c"
//	humanize.List([]string{"a", "b"}, humanize.WithConjunction(humanize.Or)) // "a or b"
//	humanize.ListFunc(keys, humanize.Quote)                                 // "'x', 'y', and 'z'"
//
// It is used by the literals and query packages to build readable error
// messages, and is equally usable on its own.
package humanize
