// Package obj provides helpers for Go maps modelled on lodash's Object
// category: building maps from pairs, picking and omitting keys, deep
// merging, and reading or writing nested map[string]any values by
// property path.
//
//	m := obj.FromPairs([]obj.Pair[string, int]{obj.P("a", 1), obj.P("b", 2)})
//	obj.Pick(m, "a")                          // → map[a:1]
//
//	cfg := map[string]any{}
//	obj.Set(cfg, "db.hosts", []any{"h1", "h2"})
//	obj.Get(cfg, "db.hosts[1]")               // → "h2"
package obj
