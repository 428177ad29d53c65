package obj

import (
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Property paths for map[string]any
//
// A path is a dot-separated list of keys; bracketed integers index into
// []any values, so "a[0].b" and "a.0.b" are equivalent:
//
//	m := map[string]any{
//	    "a": []any{map[string]any{"b": map[string]any{"c": 3}}},
//	}
//
//	Get(m, "a[0].b.c")          → 3
//	Get(m, "a.b.c", "default")  → "default"
//	Set(m, "x.y.z", 4)
//	Has(m, "x.y")               → true
//	Unset(m, "a[0].b.c")
// ─────────────────────────────────────────────────────────────────────────────

var bracketReplacer = strings.NewReplacer("[", ".", "]", "")

// toPath splits a property path into its segments, dropping empty ones.
func toPath(path string) []string {
	parts := strings.Split(bracketReplacer.Replace(path), ".")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// child returns container[seg] when container is a map or a slice and seg
// addresses an existing element.
func child(container any, seg string) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	default:
		return nil, false
	}
}

// assign writes container[seg] = value and reports whether it could.
// Slices are never grown.
func assign(container any, seg string, value any) bool {
	switch c := container.(type) {
	case map[string]any:
		c[seg] = value
		return true
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(c) {
			return false
		}
		c[i] = value
		return true
	default:
		return false
	}
}

// lookup walks segs from m and returns the value found at the end.
func lookup(m map[string]any, segs []string) (any, bool) {
	if len(segs) == 0 {
		return nil, false
	}
	var current any = m
	for _, seg := range segs {
		next, ok := child(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Get returns the value at path in m, or def[0] (nil when omitted) if the
// path does not resolve.
func Get(m map[string]any, path string, def ...any) any {
	if v, ok := lookup(m, toPath(path)); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether path resolves in m.
func Has(m map[string]any, path string) bool {
	_, ok := lookup(m, toPath(path))
	return ok
}

// Set writes value at path in m and returns m. Missing or non-container
// intermediate values are replaced with new maps. Slice elements are only
// written when the index is in range; an out-of-range index leaves m
// unchanged. A nil m is replaced with a new map, which is returned.
func Set(m map[string]any, path string, value any) map[string]any {
	if m == nil {
		m = make(map[string]any)
	}
	segs := toPath(path)
	if len(segs) == 0 {
		return m
	}
	var current any = m
	for _, seg := range segs[:len(segs)-1] {
		next, ok := child(current, seg)
		switch next.(type) {
		case map[string]any, []any:
		default:
			ok = false
		}
		if !ok {
			next = make(map[string]any)
			if !assign(current, seg, next) {
				return m
			}
		}
		current = next
	}
	assign(current, segs[len(segs)-1], value)
	return m
}

// Unset removes the property at path and reports whether it existed.
// Map entries are deleted; slice elements are set to nil so indexes of the
// remaining elements do not shift.
func Unset(m map[string]any, path string) bool {
	segs := toPath(path)
	if len(segs) == 0 {
		return false
	}
	var parent any = m
	if len(segs) > 1 {
		var ok bool
		if parent, ok = lookup(m, segs[:len(segs)-1]); !ok {
			return false
		}
	}
	last := segs[len(segs)-1]
	if _, ok := child(parent, last); !ok {
		return false
	}
	if p, isMap := parent.(map[string]any); isMap {
		delete(p, last)
		return true
	}
	return assign(parent, last, nil)
}
