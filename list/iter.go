package list

import "github.com/npillmayer/containers/alloc"

// Iter is a bidirectional iterator over a List. Stepping forward from the
// last element yields End; stepping forward from End wraps around to the
// first element.
//
// Iterators are invalidated when their element is erased. They survive all
// other mutations of the list, including sorting. An iterator is bound to the
// nodes of a list rather than to the list value, so after Swap it belongs to
// the list which received its element.
type Iter[T any] struct {
	nodes *alloc.LinearAllocator[node[T]]
	head  alloc.Handle // sentinel of the owning node set
	h     alloc.Handle
	gen   uint32
}

func newIter[T any](nodes *alloc.LinearAllocator[node[T]], head, h alloc.Handle) Iter[T] {
	return Iter[T]{nodes: nodes, head: head, h: h, gen: nodes.Generation(h)}
}

// Valid reports whether the iterator refers to an element.
func (it Iter[T]) Valid() bool {
	if it.nodes == nil || it.h == alloc.Nil || it.h == it.head {
		return false
	}
	return it.nodes.IsLive(it.h) && it.nodes.Generation(it.h) == it.gen
}

// Value returns the element the iterator refers to.
func (it Iter[T]) Value() T {
	assert(it.Valid(), "list.Iter: dereferencing invalid iterator")
	return it.nodes.At(it.h).value
}

// Ref returns a pointer to the element the iterator refers to.
func (it Iter[T]) Ref() *T {
	assert(it.Valid(), "list.Iter: dereferencing invalid iterator")
	return &it.nodes.At(it.h).value
}

// Next returns an iterator to the following position.
func (it Iter[T]) Next() Iter[T] {
	return newIter(it.nodes, it.head, it.nodes.At(it.h).next)
}

// Prev returns an iterator to the preceding position.
func (it Iter[T]) Prev() Iter[T] {
	return newIter(it.nodes, it.head, it.nodes.At(it.h).prev)
}
