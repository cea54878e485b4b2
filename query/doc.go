// Package query parses, converts and merges URL query parameters across five
// interchangeable representations ("forms"):
//
//	map     *OrderedMap      insertion-ordered key -> value
//	object  url.Values       the standard library's query type
//	record  map[string]any   plain map (map[string]string accepted on input)
//	pairs   []Pair           ordered key/value list, duplicates allowed
//	string  string           a path, URL or "?a=1" string containing one '?'
//
// The string form is produced as "?a=1&b=2" (or "" when empty) so that it
// reads back unchanged; merging into a string keeps its path and fragment.
//
// Values are strings, booleans, integers, floats or nil. Forms that hold
// strings (object, string) format booleans and numbers and drop nil values.
//
// A string yields parameters only when it contains exactly one '?'; anything
// else is treated as having no query. url.Values and records are read in
// sorted key order so that conversions are deterministic.
//
//	q, _ := query.Parse("/search?q=go&page=2", query.WithForm(query.FormRecord))
//	// map[string]any{"page": "2", "q": "go"}
//
//	merged, _ := query.Merge(url.Values{"a": {"1"}}, map[string]any{"b": true})
//	// url.Values{"a": {"1"}, "b": {"true"}}
//
//	u, _ := query.AddToURL("/items?page=1", map[string]any{"page": 2})
//	// "/items?page=2"
package query
