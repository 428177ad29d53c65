// Package arr provides standalone, generic helper functions for Go slices,
// modelled on lodash's Array category.
//
// # Slice helpers
//
// Every helper operates on plain []T values, with no wrapper type required,
// and returns a freshly allocated slice unless documented otherwise:
//
//	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)        // → [[1 2] [3 4] [5]]
//	rest   := arr.Drop([]int{1, 2, 3})                  // → [2 3]
//	clean  := arr.Compact([]string{"a", "", "b"})       // → [a b]
//
// Optional lodash arguments (size, n, fromIndex, ...) are expressed as a
// trailing variadic parameter; only the first value is used.
//
// # Set operations
//
// [Difference] and [Intersection] compare elements with [SameValueZero]:
// positive and negative zero are equal, NaN is never equal to anything.
// This is exactly the behaviour of Go's == operator, so both operations
// also work for T = any as long as every dynamic value is comparable.
//
//	arr.Difference([]int{2, 1}, []int{2, 3})            // → [1]
//	arr.Intersection([]int{2, 1}, []int{2, 3})          // → [2]
//
// # Mutation
//
// [Fill] is the only helper that writes to its argument.
package arr
