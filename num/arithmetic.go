package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is satisfied by every built-in integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Add returns augend + addend.
func Add[T Number](augend, addend T) T { return augend + addend }

// Subtract returns minuend - subtrahend.
func Subtract[T Number](minuend, subtrahend T) T { return minuend - subtrahend }

// Multiply returns multiplier * multiplicand.
func Multiply[T Number](multiplier, multiplicand T) T { return multiplier * multiplicand }

// Divide returns dividend / divisor in float64, so integer operands never
// panic: a zero divisor gives ±Inf, or NaN for 0/0.
func Divide[T Number](dividend, divisor T) float64 {
	return float64(dividend) / float64(divisor)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of items, or 0 when items is empty.
func Sum[T Number](items []T) T {
	var total T
	for _, item := range items {
		total += item
	}
	return total
}

// SumBy returns the sum of fn(item) over items.
func SumBy[T any, N Number](items []T, fn func(T) N) N {
	var total N
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Mean returns the arithmetic mean of items. An empty slice yields NaN.
func Mean[T Number](items []T) float64 {
	if len(items) == 0 {
		return math.NaN()
	}
	var total float64
	for _, item := range items {
		total += float64(item)
	}
	return total / float64(len(items))
}

// Max returns the largest element of items, ignoring NaN.
// Returns the zero value and false if items holds no comparable element.
func Max[T constraints.Ordered](items []T) (T, bool) {
	return MaxBy(items, func(v T) T { return v })
}

// Min returns the smallest element of items, ignoring NaN.
// Returns the zero value and false if items holds no comparable element.
func Min[T constraints.Ordered](items []T) (T, bool) {
	return MinBy(items, func(v T) T { return v })
}

// MaxBy returns the element whose key, as extracted by fn, is largest.
// On ties the first such element wins. Elements with a NaN key are
// skipped; if every key is NaN, or items is empty, MaxBy returns the zero
// value and false.
func MaxBy[T any, K constraints.Ordered](items []T, fn func(T) K) (T, bool) {
	return extremeBy(items, fn, func(k, best K) bool { return k > best })
}

// MinBy returns the element whose key, as extracted by fn, is smallest.
// Ties and NaN keys are handled as in [MaxBy].
func MinBy[T any, K constraints.Ordered](items []T, fn func(T) K) (T, bool) {
	return extremeBy(items, fn, func(k, best K) bool { return k < best })
}

// extremeBy keeps the first element whose key beats every earlier one.
// k != k only holds for NaN.
func extremeBy[T any, K constraints.Ordered](items []T, fn func(T) K, beats func(k, best K) bool) (T, bool) {
	var (
		best    T
		bestKey K
		found   bool
	)
	for _, item := range items {
		k := fn(item)
		if k != k {
			continue
		}
		if !found || beats(k, bestKey) {
			best, bestKey, found = item, k, true
		}
	}
	return best, found
}
