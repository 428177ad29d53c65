package arr

// linearScanLimit is the largest exclusion set searched with a linear scan.
// Larger sets are indexed in a map.
const linearScanLimit = 16

// SameValueZero reports whether a and b are equal for membership purposes.
//
// +0 and -0 compare equal and NaN never equals anything, including itself.
// Go's == already has these semantics for every comparable type, and map
// keys follow the same rule, so hashed and scanned membership agree.
//
// Like ==, it panics when T is an interface type holding a non-comparable
// dynamic value.
func SameValueZero[T comparable](a, b T) bool {
	return a == b
}

// membership answers "is v in the set?" under SameValueZero.
type membership[T comparable] struct {
	items []T
	index map[T]struct{}
}

func newMembership[T comparable](slices ...[]T) *membership[T] {
	total := 0
	for _, s := range slices {
		total += len(s)
	}
	m := &membership[T]{}
	if total <= linearScanLimit {
		m.items = make([]T, 0, total)
		for _, s := range slices {
			m.items = append(m.items, s...)
		}
		return m
	}
	m.index = make(map[T]struct{}, total)
	for _, s := range slices {
		for _, item := range s {
			m.index[item] = struct{}{}
		}
	}
	return m
}

func (m *membership[T]) has(v T) bool {
	if m.index != nil {
		_, ok := m.index[v]
		return ok
	}
	for _, item := range m.items {
		if SameValueZero(item, v) {
			return true
		}
	}
	return false
}

// Difference returns the elements of items that do not appear in any of
// values, preserving order and duplicates.
// With no values a copy of items is returned.
//
//	Difference([]int{1, 2, 2, 3}, []int{2}, []int{9}) // → [1 3]
func Difference[T comparable](items []T, values ...[]T) []T {
	if len(values) == 0 {
		return copyOf(items)
	}
	excluded := newMembership(values...)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !excluded.has(item) {
			out = append(out, item)
		}
	}
	return out
}

// Intersection returns the elements of arrays[0] that are present in every
// other slice. Order follows arrays[0] and each occurrence is tested on its
// own, so duplicates in the first slice are kept.
//
// A single slice yields a copy of it; no slices yield an empty slice.
//
//	Intersection([]int{1, 2, 2, 3}, []int{2, 3}, []int{3, 2}) // → [2 2 3]
func Intersection[T comparable](arrays ...[]T) []T {
	if len(arrays) == 0 {
		return []T{}
	}
	first, rest := arrays[0], arrays[1:]
	sets := make([]*membership[T], len(rest))
	for i, other := range rest {
		sets[i] = newMembership(other)
	}
	out := make([]T, 0, len(first))
outer:
	for _, item := range first {
		for _, set := range sets {
			if !set.has(item) {
				continue outer
			}
		}
		out = append(out, item)
	}
	return out
}

// Includes reports whether value is in items under [SameValueZero].
func Includes[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}
