package chain

import (
	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/num"
)

// This file holds the operations that change the element type, or need a
// tighter constraint than comparable. Go methods cannot declare their own
// type parameters, so they are package-level functions:
//
//	total := chain.Sum(chain.Map(chain.Of("a", "bb", "ccc"),
//	    func(s string, _ int) int { return len(s) })) // → 6

// Map applies fn to every item and returns a new Chain[U].
func Map[T, U comparable](c *Chain[T], fn func(T, int) U) *Chain[U] {
	return wrap(arr.Map(c.items, fn))
}

// Sum returns the sum of the items.
func Sum[T num.Number](c *Chain[T]) T {
	return num.Sum(c.items)
}

// Mean returns the arithmetic mean of the items, NaN when empty.
func Mean[T num.Number](c *Chain[T]) float64 {
	return num.Mean(c.items)
}

// Round rounds every item half up to precision[0] decimal places.
// See [num.Round] for the rounding rules.
func Round[T ~float64](c *Chain[T], precision ...int) *Chain[T] {
	return wrap(arr.Map(c.items, func(v T, _ int) T {
		return T(num.Round(float64(v), precision...))
	}))
}
