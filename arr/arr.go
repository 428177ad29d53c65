package arr

import (
	"math"
	"reflect"
)

// optional returns the first value of opts, or def when opts is empty.
func optional(opts []int, def int) int {
	if len(opts) > 0 {
		return opts[0]
	}
	return def
}

func copyOf[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// relativeIndex resolves a lodash-style position: negative values count
// back from length, and the result is clamped to [0, length].
func relativeIndex(i, length int) int {
	if i < 0 {
		i += length
		if i < 0 {
			return 0
		}
	}
	if i > length {
		return length
	}
	return i
}

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first element of items.
// Returns the zero value and false when items is empty.
func Head[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// Initial returns all but the last element of items. The input is left
// untouched.
func Initial[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return copyOf(items[:len(items)-1])
}

// IndexOf returns the index of the first element equal to value under
// [SameValueZero], or -1. The search starts at fromIndex[0] (default 0);
// a negative fromIndex is an offset from the end.
func IndexOf[T comparable](items []T, value T, fromIndex ...int) int {
	start := relativeIndex(optional(fromIndex, 0), len(items))
	for i := start; i < len(items); i++ {
		if SameValueZero(items[i], value) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into groups of size[0] (default 1). The final group
// holds the remainder. A size below 1 yields no groups.
func Chunk[T any](items []T, size ...int) [][]T {
	n := optional(size, 1)
	if n < 1 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+n-1)/n)
	for i := 0; i < len(items); i += n {
		end := min(i+n, len(items))
		chunks = append(chunks, copyOf(items[i:end]))
	}
	return chunks
}

// Compact returns items without falsey values: the zero value of T and,
// for floating-point elements, NaN (lodash's false, 0, "", nil and NaN).
//
// When T is an interface type the dynamic value decides: nil, false, 0, ""
// and NaN are dropped, and everything else is kept. Values that are not
// comparable, such as a slice held in an any, are always kept.
func Compact[T comparable](items []T) []T {
	drop := falsey[T]
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		drop = func(item T) bool { return falseyValue(reflect.ValueOf(item)) }
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			out = append(out, item)
		}
	}
	return out
}

func falsey[T comparable](item T) bool {
	var zero T
	if item == zero {
		return true
	}
	switch v := reflect.ValueOf(item); v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	}
	return false
}

func falseyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true // nil interface
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0 || math.IsNaN(v.Float())
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.IsZero()
	}
	return false
}

// Concat returns a new slice holding items followed by every slice in values.
func Concat[T any](items []T, values ...[]T) []T {
	total := len(items)
	for _, v := range values {
		total += len(v)
	}
	out := make([]T, 0, total)
	out = append(out, items...)
	for _, v := range values {
		out = append(out, v...)
	}
	return out
}

// Drop returns items without its first n[0] elements (default 1).
func Drop[T any](items []T, n ...int) []T {
	k := max(optional(n, 1), 0)
	if k >= len(items) {
		return []T{}
	}
	return copyOf(items[k:])
}

// DropRight returns items without its last n[0] elements (default 1).
func DropRight[T any](items []T, n ...int) []T {
	k := max(optional(n, 1), 0)
	if k >= len(items) {
		return []T{}
	}
	return copyOf(items[:len(items)-k])
}

// Fill overwrites items[start:end] with value and returns items.
// bounds[0] is start (default 0) and bounds[1] is end (default len(items));
// negative bounds count back from the end and both are clamped.
//
// Unlike every other helper in this package, Fill mutates its argument.
func Fill[T any](items []T, value T, bounds ...int) []T {
	start, end := 0, len(items)
	if len(bounds) > 0 {
		start = relativeIndex(bounds[0], len(items))
	}
	if len(bounds) > 1 {
		end = relativeIndex(bounds[1], len(items))
	}
	for i := start; i < end; i++ {
		items[i] = value
	}
	return items
}

// Flatten flattens items a single level deep.
func Flatten[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// FlattenDeep recursively flattens nested []any values.
func FlattenDeep(items []any) []any {
	return flattenTo(make([]any, 0, len(items)), items, -1)
}

// FlattenDepth flattens nested []any values up to depth[0] levels
// (default 1). A depth of 0 returns a copy.
func FlattenDepth(items []any, depth ...int) []any {
	return flattenTo(make([]any, 0, len(items)), items, max(optional(depth, 1), 0))
}

// flattenTo appends items to out, descending into []any values while depth
// is non-zero. A negative depth means unlimited.
func flattenTo(out, items []any, depth int) []any {
	for _, item := range items {
		nested, ok := item.([]any)
		if !ok || depth == 0 {
			out = append(out, item)
			continue
		}
		out = flattenTo(out, nested, depth-1)
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn(item, index) for every element and returns items.
// Iteration stops early as soon as fn returns false.
func ForEach[T any](items []T, fn func(T, int) bool) []T {
	for i, item := range items {
		if !fn(item, i) {
			break
		}
	}
	return items
}

// Filter returns the elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}
