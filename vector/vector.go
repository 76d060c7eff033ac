package vector

import (
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/npillmayer/containers"
)

// Vector is a growable array.
//
// A Vector created by
//
//	Vector[T]{}
//
// is a valid, empty vector.
type Vector[T any] struct {
	buf  []T // len(buf) is the capacity; valid elements are buf[:size]
	size int
}

// New creates an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewN creates a vector of n copies of fill.
func NewN[T any](n int, fill T) *Vector[T] {
	v := &Vector[T]{}
	if n <= 0 {
		return v
	}
	v.buf = make([]T, n)
	for i := range v.buf {
		v.buf[i] = fill
	}
	v.size = n
	return v
}

// From creates a vector holding values, in order.
func From[T any](values ...T) *Vector[T] {
	v := &Vector[T]{}
	if len(values) == 0 {
		return v
	}
	v.buf = make([]T, len(values))
	copy(v.buf, values)
	v.size = len(values)
	return v
}

// Clone returns a copy of v with identical capacity. Elements are copied by
// assignment.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{size: v.size}
	if len(v.buf) > 0 {
		c.buf = make([]T, len(v.buf))
		copy(c.buf, v.buf[:v.size])
	}
	return c
}

func (v *Vector[T]) slot(i int) *T {
	return &v.buf[i]
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Cap returns the capacity of the underlying buffer.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// MaxSize returns the maximum number of elements a vector may hold.
func (v *Vector[T]) MaxSize() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		sz = 1
	}
	return (math.MaxInt / sz) >> 1
}

// At returns the element at index i, checking bounds.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", containers.ErrOutOfRange, i, v.size)
	}
	return v.buf[i], nil
}

// Ref returns a pointer to the element at index i. Bounds are not checked
// beyond Go's own slice checks. The pointer is invalidated by any operation
// which re-allocates the buffer.
func (v *Vector[T]) Ref(i int) *T {
	return &v.buf[:v.size][i]
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: front of empty vector", containers.ErrLogic)
	}
	return v.buf[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: back of empty vector", containers.ErrLogic)
	}
	return v.buf[v.size-1], nil
}

// Data returns the elements as a slice sharing the vector's buffer.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size]
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iter[T] {
	return Iter[T]{seq: v, i: 0}
}

// End returns an iterator past the last element.
func (v *Vector[T]) End() Iter[T] {
	return Iter[T]{seq: v, i: v.size}
}

// All iterates over index/value pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Reserve grows capacity to at least n elements. It never shrinks the buffer.
func (v *Vector[T]) Reserve(n int) error {
	if n > v.MaxSize() {
		return fmt.Errorf("%w: cannot reserve %d elements", containers.ErrLength, n)
	}
	if n > len(v.buf) {
		v.realloc(n)
	}
	return nil
}

// ShrinkToFit reduces capacity to the number of elements.
func (v *Vector[T]) ShrinkToFit() {
	if len(v.buf) > v.size {
		v.realloc(v.size)
	}
}

func (v *Vector[T]) realloc(capacity int) {
	tracer().Debugf("vector: re-allocating buffer %d -> %d", len(v.buf), capacity)
	var buf []T
	if capacity > 0 {
		buf = make([]T, capacity)
		copy(buf, v.buf[:v.size])
	}
	v.buf = buf
}

// grow makes room for n more elements, doubling capacity as needed.
func (v *Vector[T]) grow(n int) {
	need := v.size + n
	if need <= len(v.buf) {
		return
	}
	capacity := len(v.buf)
	if capacity == 0 {
		capacity = 1
	}
	for capacity < need {
		capacity *= 2
	}
	if capacity > v.MaxSize() {
		capacity = need
	}
	err := v.Reserve(capacity)
	assert(err == nil, "vector: capacity exceeds max size")
}

// Clear removes all elements. Capacity is kept.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

func (v *Vector[T]) checkOwn(pos Iter[T]) {
	assert(pos.seq == sequence[T](v), "vector: iterator belongs to a different container")
	assert(pos.i >= 0 && pos.i <= v.size, "vector: iterator out of range")
}

// Insert inserts value in front of pos and returns an iterator to the new
// element.
func (v *Vector[T]) Insert(pos Iter[T], value T) Iter[T] {
	return v.InsertN(pos, 1, value)
}

// InsertN inserts n copies of value in front of pos and returns an iterator
// to the first inserted element.
func (v *Vector[T]) InsertN(pos Iter[T], n int, value T) Iter[T] {
	v.checkOwn(pos)
	if n <= 0 {
		return pos
	}
	v.grow(n)
	copy(v.buf[pos.i+n:], v.buf[pos.i:v.size])
	for i := pos.i; i < pos.i+n; i++ {
		v.buf[i] = value
	}
	v.size += n
	return Iter[T]{seq: v, i: pos.i}
}

// InsertMany inserts values in front of pos, keeping their order, and returns
// an iterator positioned after the last inserted element.
func (v *Vector[T]) InsertMany(pos Iter[T], values ...T) Iter[T] {
	v.checkOwn(pos)
	if len(values) == 0 {
		return pos
	}
	n := len(values)
	v.grow(n)
	copy(v.buf[pos.i+n:], v.buf[pos.i:v.size])
	copy(v.buf[pos.i:], values)
	v.size += n
	return Iter[T]{seq: v, i: pos.i + n}
}

// InsertManyBack appends values in order.
func (v *Vector[T]) InsertManyBack(values ...T) {
	for _, x := range values {
		v.PushBack(x)
	}
}

// Erase removes the element at pos and returns an iterator to the element
// which followed it.
func (v *Vector[T]) Erase(pos Iter[T]) Iter[T] {
	if v.size == 0 {
		return v.End()
	}
	return v.EraseRange(pos, pos.Next())
}

// EraseRange removes the elements in [first, last) and returns an iterator to
// the element which followed the range.
func (v *Vector[T]) EraseRange(first, last Iter[T]) Iter[T] {
	if v.size == 0 {
		return v.End()
	}
	v.checkOwn(first)
	v.checkOwn(last)
	n := last.Distance(first)
	if n <= 0 {
		return first
	}
	copy(v.buf[first.i:], v.buf[last.i:v.size])
	clear(v.buf[v.size-n : v.size])
	v.size -= n
	v.shrink()
	return Iter[T]{seq: v, i: first.i}
}

// PushBack appends value.
func (v *Vector[T]) PushBack(value T) {
	v.grow(1)
	v.buf[v.size] = value
	v.size++
}

// PopBack removes the last element, if any. Capacity halves once the vector
// is less than half full.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	var zero T
	v.size--
	v.buf[v.size] = zero
	v.shrink()
}

func (v *Vector[T]) shrink() {
	if v.size < len(v.buf)/2 {
		v.realloc(len(v.buf) / 2)
	}
}

// PushFront inserts value in front of the first element.
func (v *Vector[T]) PushFront(value T) {
	v.Insert(v.Begin(), value)
}

// Swap exchanges the contents of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
}

// Resize changes the number of elements to n. New elements are set to fill.
func (v *Vector[T]) Resize(n int, fill T) {
	if n < 0 {
		n = 0
	}
	if n > len(v.buf) {
		err := v.Reserve(n)
		assert(err == nil, "vector: resize exceeds max size")
	}
	if n >= v.size {
		for i := v.size; i < n; i++ {
			v.buf[i] = fill
		}
	} else {
		clear(v.buf[n:v.size])
	}
	v.size = n
}

// Assign replaces the contents of v with the elements of [first, last).
// The range may belong to any Vector or Array.
func (v *Vector[T]) Assign(first, last Iter[T]) {
	var values []T
	for it := first; it != last; it = it.Next() {
		values = append(values, it.Value())
	}
	v.Clear()
	for _, x := range values {
		v.PushBack(x)
	}
}
