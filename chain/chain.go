package chain

import (
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-lodash-utils/arr"
)

// Chain is an immutable wrapper around a slice of T, the Go counterpart of
// a lodash _.chain sequence.
//
// Every method that transforms the chain returns a *new* Chain and leaves
// the receiver unchanged, so a Chain may be read from several goroutines
// at once.
//
//	out := chain.Of(1, 2, 3, 4, 5, 6).
//	    Difference([]int{2, 4}).
//	    Drop().
//	    Value() // → [3 5 6]
//
// T must be comparable because the set operations and [Chain.Compact]
// compare elements. Operations that change the element type are
// package-level functions ([Map], [Sum], [Round]).
type Chain[T comparable] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of creates a Chain from a variadic list of items (copied).
func Of[T comparable](items ...T) *Chain[T] {
	return From(items)
}

// From creates a Chain from a slice (the slice is copied).
func From[T comparable](items []T) *Chain[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Chain[T]{items: dst}
}

// wrap takes ownership of items without copying.
func wrap[T comparable](items []T) *Chain[T] {
	if items == nil {
		items = []T{}
	}
	return &Chain[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Unwrapping
// ─────────────────────────────────────────────────────────────────────────────

// Value returns a copy of the wrapped items.
func (c *Chain[T]) Value() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items.
func (c *Chain[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the chain holds no items.
func (c *Chain[T]) IsEmpty() bool { return len(c.items) == 0 }

// Head returns the first item, or the zero value and false when empty.
func (c *Chain[T]) Head() (T, bool) { return arr.Head(c.items) }

// IndexOf returns the index of value in the chain, or -1.
// See [arr.IndexOf] for the meaning of fromIndex.
func (c *Chain[T]) IndexOf(value T, fromIndex ...int) int {
	return arr.IndexOf(c.items, value, fromIndex...)
}

// Includes reports whether value is in the chain.
func (c *Chain[T]) Includes(value T) bool { return arr.Includes(c.items, value) }

// Chunk splits the items into groups of size[0] (default 1).
func (c *Chain[T]) Chunk(size ...int) [][]T { return arr.Chunk(c.items, size...) }

// String returns a debug representation, e.g. "Chain[1 2 3]".
func (c *Chain[T]) String() string {
	return fmt.Sprintf("Chain%v", c.items)
}

// ToJSON marshals the items as a JSON array.
func (c *Chain[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// ToYAML marshals the items as a YAML sequence.
func (c *Chain[T]) ToYAML() ([]byte, error) {
	return yaml.Marshal(c.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Array operations
// ─────────────────────────────────────────────────────────────────────────────

// Compact drops zero values (and NaN).
func (c *Chain[T]) Compact() *Chain[T] { return wrap(arr.Compact(c.items)) }

// Concat appends every slice in values.
func (c *Chain[T]) Concat(values ...[]T) *Chain[T] { return wrap(arr.Concat(c.items, values...)) }

// Difference removes every item found in any of values.
func (c *Chain[T]) Difference(values ...[]T) *Chain[T] {
	return wrap(arr.Difference(c.items, values...))
}

// Intersection keeps the items present in every one of others.
func (c *Chain[T]) Intersection(others ...[]T) *Chain[T] {
	return wrap(arr.Intersection(append([][]T{c.items}, others...)...))
}

// Drop skips the first n[0] items (default 1).
func (c *Chain[T]) Drop(n ...int) *Chain[T] { return wrap(arr.Drop(c.items, n...)) }

// DropRight skips the last n[0] items (default 1).
func (c *Chain[T]) DropRight(n ...int) *Chain[T] { return wrap(arr.DropRight(c.items, n...)) }

// Initial drops the last item.
func (c *Chain[T]) Initial() *Chain[T] { return wrap(arr.Initial(c.items)) }

// Fill returns a copy with positions [start, end) set to value.
// Unlike [arr.Fill], the receiver is not modified.
func (c *Chain[T]) Fill(value T, bounds ...int) *Chain[T] {
	return wrap(arr.Fill(c.Value(), value, bounds...))
}

// Filter keeps the items for which fn returns true.
func (c *Chain[T]) Filter(fn func(T, int) bool) *Chain[T] { return wrap(arr.Filter(c.items, fn)) }

// Reverse reverses the item order.
func (c *Chain[T]) Reverse() *Chain[T] { return wrap(arr.Reverse(c.items)) }

// ─────────────────────────────────────────────────────────────────────────────
// Side effects
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn(item, index) until it returns false and returns c.
func (c *Chain[T]) ForEach(fn func(T, int) bool) *Chain[T] {
	arr.ForEach(c.items, fn)
	return c
}

// Tap passes a copy of the items to fn and returns c unchanged.
func (c *Chain[T]) Tap(fn func([]T)) *Chain[T] {
	fn(c.Value())
	return c
}

// Thru replaces the items with the result of fn.
func (c *Chain[T]) Thru(fn func([]T) []T) *Chain[T] {
	return From(fn(c.Value()))
}

// Log writes the current items to logger at debug level and returns c.
// A nil logger discards the entry.
func (c *Chain[T]) Log(logger *zap.Logger, msg string) *Chain[T] {
	if logger == nil {
		return c
	}
	logger.Debug(msg,
		zap.Int("count", len(c.items)),
		zap.Any("items", c.items),
	)
	return c
}
