package obj

import "fmt"

// Pair is a single key/value entry, the element type of [FromPairs] and
// [ToPairs].
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// P is shorthand for Pair[K, V]{Key: k, Value: v}.
func P[K comparable, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

// String returns "[key value]", the way lodash prints a pair array.
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("[%v %v]", p.Key, p.Value)
}
