package rbtree

import (
	"github.com/npillmayer/containers/alloc"
)

// Iterator is a bidirectional iterator over the values of a tree, in order.
//
// The zero Iterator and the iterator returned by End are null iterators; they
// do not refer to a value. Iterators may be compared with ==; equal iterators
// refer to the same node.
//
// An iterator is invalidated when the node it refers to is removed. Other
// mutations keep it intact, but note that Erase may move a value into another
// node (see Tree.Erase). Iterators are bound to the nodes of a tree, not to
// the tree itself, and move along with them on Tree.Swap.
type Iterator[T any] struct {
	s   *store[T]
	h   alloc.Handle
	gen uint32 // generation of the node slot at creation time
}

// Valid reports whether the iterator refers to a live value.
func (it Iterator[T]) Valid() bool {
	if it.s == nil || it.h == alloc.Nil {
		return false
	}
	nodes := it.s.nodes
	return nodes.IsLive(it.h) && nodes.Generation(it.h) == it.gen
}

// Value returns the value the iterator refers to.
func (it Iterator[T]) Value() T {
	assert(it.Valid(), "rbtree: dereferencing invalid iterator")
	return it.s.n(it.h).value
}

// Ref returns a pointer to the value the iterator refers to. Clients must not
// change a value in a way which affects its ordering.
func (it Iterator[T]) Ref() *T {
	assert(it.Valid(), "rbtree: dereferencing invalid iterator")
	return &it.s.n(it.h).value
}

// Color returns the color of the node the iterator refers to.
func (it Iterator[T]) Color() Color {
	assert(it.Valid(), "rbtree: dereferencing invalid iterator")
	return it.s.n(it.h).color
}

// Next returns an iterator to the in-order successor. Stepping beyond the
// maximum yields End(); End() stays End().
func (it Iterator[T]) Next() Iterator[T] {
	if it.h == alloc.Nil {
		return it
	}
	assert(it.Valid(), "rbtree: advancing invalid iterator")
	return it.s.iter(it.s.successor(it.h))
}

// Prev returns an iterator to the in-order predecessor. Stepping back from
// End() yields the maximum; stepping back from the minimum yields End().
func (it Iterator[T]) Prev() Iterator[T] {
	if it.h == alloc.Nil {
		if it.s == nil || it.s.root == alloc.Nil {
			return it
		}
		return it.s.iter(it.s.maximum(it.s.root))
	}
	assert(it.Valid(), "rbtree: advancing invalid iterator")
	return it.s.iter(it.s.predecessor(it.h))
}
