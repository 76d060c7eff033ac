package vector

// sequence is implemented by containers with contiguous storage.
type sequence[T any] interface {
	slot(i int) *T
	Len() int
}

// Iter is a random-access iterator over a Vector or an Array.
//
// Iterators are plain values and may be compared with ==. An iterator stays
// bound to its container and to an index; it remains usable across
// re-allocations of the container's buffer, but will of course refer to a
// different element after insertions or removals in front of it.
type Iter[T any] struct {
	seq sequence[T]
	i   int
}

// Valid reports whether the iterator refers to an element.
func (it Iter[T]) Valid() bool {
	return it.seq != nil && it.i >= 0 && it.i < it.seq.Len()
}

// Index returns the position of the iterator.
func (it Iter[T]) Index() int {
	return it.i
}

// Value returns the element the iterator refers to.
func (it Iter[T]) Value() T {
	assert(it.Valid(), "vector.Iter: dereferencing invalid iterator")
	return *it.seq.slot(it.i)
}

// Ref returns a pointer to the element the iterator refers to.
// The pointer is invalidated by re-allocation of the container's buffer.
func (it Iter[T]) Ref() *T {
	assert(it.Valid(), "vector.Iter: dereferencing invalid iterator")
	return it.seq.slot(it.i)
}

// Set overwrites the element the iterator refers to.
func (it Iter[T]) Set(value T) {
	*it.Ref() = value
}

// Next returns an iterator to the following position.
func (it Iter[T]) Next() Iter[T] {
	return Iter[T]{seq: it.seq, i: it.i + 1}
}

// Prev returns an iterator to the preceding position.
func (it Iter[T]) Prev() Iter[T] {
	return Iter[T]{seq: it.seq, i: it.i - 1}
}

// Add returns an iterator moved by n positions (n may be negative).
func (it Iter[T]) Add(n int) Iter[T] {
	return Iter[T]{seq: it.seq, i: it.i + n}
}

// Distance returns the number of positions from other to it.
func (it Iter[T]) Distance(other Iter[T]) int {
	assert(it.seq == other.seq, "vector.Iter: distance between unrelated iterators")
	return it.i - other.i
}

// Less reports whether it is positioned before other.
func (it Iter[T]) Less(other Iter[T]) bool {
	assert(it.seq == other.seq, "vector.Iter: comparing unrelated iterators")
	return it.i < other.i
}
