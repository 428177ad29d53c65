package obj

import (
	"fmt"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// FromPairs builds a map from key/value pairs. When a key repeats, the last
// pair wins.
//
//	FromPairs([]Pair[string, int]{P("a", 1), P("b", 2)}) // → map[a:1 b:2]
func FromPairs[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	out := make(map[K]V, len(pairs))
	for _, p := range pairs {
		out[p.Key] = p.Value
	}
	return out
}

// ToPairs is the inverse of [FromPairs]. Pairs are sorted by key so the
// output is deterministic.
func ToPairs[K constraints.Ordered, V any](m map[K]V) []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, Pair[K, V]{Key: k, Value: m[k]})
	}
	return out
}

// ZipObject creates a map from equal-length key and value slices.
// Returns [ErrMismatchedLengths] if len(keys) != len(values).
func ZipObject[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrMismatchedLengths, len(keys), len(values))
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// Pick returns a new map holding only the listed top-level keys.
// Keys absent from m are skipped.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a shallow copy of m without the listed top-level keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := maps.Clone(m)
	if out == nil {
		out = make(map[K]V)
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Merge merges each source into dst from left to right and returns dst.
// Nested map[string]any values are merged recursively; anything else in a
// source overwrites the destination value. A nil dst is replaced with a
// new map, so callers must use the returned value.
func Merge(dst map[string]any, sources ...map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for _, src := range sources {
		for k, srcVal := range src {
			dstMap, dstIsMap := dst[k].(map[string]any)
			srcMap, srcIsMap := srcVal.(map[string]any)
			if dstIsMap && srcIsMap {
				dst[k] = Merge(dstMap, srcMap)
				continue
			}
			dst[k] = srcVal
		}
	}
	return dst
}
