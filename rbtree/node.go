package rbtree

import (
	"github.com/npillmayer/containers/alloc"
)

// Color is the color of a tree node.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// node links to its relatives by handle. Children are owned by their parent;
// parent is a back-reference only.
type node[T any] struct {
	value  T
	color  Color
	parent alloc.Handle
	left   alloc.Handle
	right  alloc.Handle
}

// store holds the nodes of a tree. Iterators refer to the store rather than
// to the tree, so they follow their values when trees are swapped.
type store[T any] struct {
	nodes *alloc.LinearAllocator[node[T]]
	root  alloc.Handle
	size  int
}

func newStore[T any]() *store[T] {
	return &store[T]{nodes: alloc.New[node[T]]()}
}

func (s *store[T]) iter(h alloc.Handle) Iterator[T] {
	return Iterator[T]{s: s, h: h, gen: s.nodes.Generation(h)}
}

func (s *store[T]) n(h alloc.Handle) *node[T] {
	return s.nodes.At(h)
}

// colorOf treats absent nodes as black leaves.
func (s *store[T]) colorOf(h alloc.Handle) Color {
	if h == alloc.Nil {
		return Black
	}
	return s.n(h).color
}

func (s *store[T]) newNode(value T, color Color) alloc.Handle {
	h := s.nodes.Allocate()
	s.nodes.Construct(h, node[T]{value: value, color: color})
	return h
}

func (s *store[T]) freeNode(h alloc.Handle) {
	s.nodes.Destroy(h)
	s.nodes.Deallocate(h)
}

func (s *store[T]) minimum(h alloc.Handle) alloc.Handle {
	for s.n(h).left != alloc.Nil {
		h = s.n(h).left
	}
	return h
}

func (s *store[T]) maximum(h alloc.Handle) alloc.Handle {
	for s.n(h).right != alloc.Nil {
		h = s.n(h).right
	}
	return h
}

// successor returns the in-order successor of h, or Nil for the maximum.
func (s *store[T]) successor(h alloc.Handle) alloc.Handle {
	if r := s.n(h).right; r != alloc.Nil {
		return s.minimum(r)
	}
	p := s.n(h).parent
	for p != alloc.Nil && h == s.n(p).right {
		h, p = p, s.n(p).parent
	}
	return p
}

// predecessor returns the in-order predecessor of h, or Nil for the minimum.
func (s *store[T]) predecessor(h alloc.Handle) alloc.Handle {
	if l := s.n(h).left; l != alloc.Nil {
		return s.maximum(l)
	}
	p := s.n(h).parent
	for p != alloc.Nil && h == s.n(p).left {
		h, p = p, s.n(p).parent
	}
	return p
}

// sibling returns the other child of h's parent. h may be Nil, in which case
// parent must be given explicitly.
func (s *store[T]) sibling(h, parent alloc.Handle) alloc.Handle {
	p := s.n(parent)
	if h == p.left {
		return p.right
	}
	return p.left
}
