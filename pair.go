package containers

import "fmt"

// Pair bundles two values. Ordered maps store their entries as pairs of
// key (First) and mapped value (Second).
type Pair[K, V any] struct {
	First  K
	Second V
}

// MakePair creates a pair from two values.
func MakePair[K, V any](first K, second V) Pair[K, V] {
	return Pair[K, V]{First: first, Second: second}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
