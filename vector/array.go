package vector

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
)

// Array is an array with a capacity fixed at construction time.
// Its length always equals its capacity.
type Array[T any] struct {
	data []T
}

// NewArray creates an array of n elements. The first elements are
// initialized from values, the remaining ones are zero.
//
// If more than n values are given, NewArray fails with ErrInvalidArgument and
// no array is returned.
func NewArray[T any](n int, values ...T) (*Array[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative array size %d", containers.ErrInvalidArgument, n)
	}
	if len(values) > n {
		return nil, fmt.Errorf("%w: %d values for array of size %d",
			containers.ErrInvalidArgument, len(values), n)
	}
	a := &Array[T]{data: make([]T, n)}
	copy(a.data, values)
	return a, nil
}

// Clone returns a copy of a.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{data: make([]T, len(a.data))}
	copy(c.data, a.data)
	return c
}

func (a *Array[T]) slot(i int) *T {
	return &a.data[i]
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// MaxSize equals Len for fixed arrays.
func (a *Array[T]) MaxSize() int {
	return len(a.data)
}

// IsEmpty reports whether the array has size zero.
func (a *Array[T]) IsEmpty() bool {
	return len(a.data) == 0
}

// At returns the element at index i, checking bounds.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", containers.ErrOutOfRange, i, len(a.data))
	}
	return a.data[i], nil
}

// Ref returns a pointer to the element at index i.
func (a *Array[T]) Ref(i int) *T {
	return &a.data[i]
}

// Front returns the first element.
func (a *Array[T]) Front() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: front of empty array", containers.ErrLogic)
	}
	return a.data[0], nil
}

// Back returns the last element.
func (a *Array[T]) Back() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: back of empty array", containers.ErrLogic)
	}
	return a.data[len(a.data)-1], nil
}

// Data returns the elements as a slice sharing the array's storage.
func (a *Array[T]) Data() []T {
	return a.data
}

// Fill sets every element to value.
func (a *Array[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Swap exchanges the contents of a and other.
func (a *Array[T]) Swap(other *Array[T]) {
	a.data, other.data = other.data, a.data
}

// Begin returns an iterator to the first element.
func (a *Array[T]) Begin() Iter[T] {
	return Iter[T]{seq: a, i: 0}
}

// End returns an iterator past the last element.
func (a *Array[T]) End() Iter[T] {
	return Iter[T]{seq: a, i: len(a.data)}
}

// Values iterates over the elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range a.data {
			if !yield(x) {
				return
			}
		}
	}
}
