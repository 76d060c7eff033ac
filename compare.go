package containers

import (
	"cmp"
	"iter"
)

// Equal reports whether two sequences have the same length and pairwise equal
// elements.
func Equal[T comparable](a, b iter.Seq[T]) bool {
	nextB, stop := iter.Pull(b)
	defer stop()
	for x := range a {
		y, ok := nextB()
		if !ok || x != y {
			return false
		}
	}
	_, more := nextB()
	return !more
}

// LexicographicalCompare reports whether sequence a is lexicographically
// less than sequence b. A proper prefix is less than the longer sequence.
func LexicographicalCompare[T cmp.Ordered](a, b iter.Seq[T]) bool {
	return LexicographicalCompareFunc(a, b, cmp.Less[T])
}

// LexicographicalCompareFunc is like LexicographicalCompare, but uses a
// strict weak order less for comparing elements.
func LexicographicalCompareFunc[T any](a, b iter.Seq[T], less func(x, y T) bool) bool {
	nextB, stop := iter.Pull(b)
	defer stop()
	for x := range a {
		y, ok := nextB()
		if !ok || less(y, x) {
			return false
		}
		if less(x, y) {
			return true
		}
	}
	_, more := nextB()
	return more
}
