package rbtree

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
)

// nodeOverhead estimates the memory cost of a node as a multiple of the
// size of its value. It is used for MaxSize only.
const nodeOverhead = 20

// Tree is a red-black tree of values of type T.
//
// A tree is not safe for concurrent use.
type Tree[T any] struct {
	cfg Config[T]
	*store[T]
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{cfg: cfg, store: newStore[T]()}, nil
}

// NewOrdered creates an empty tree ordering values ascendingly.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	t, err := New(Ascending[T]())
	assert(err == nil, "rbtree.NewOrdered: cannot create tree")
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.size == 0
}

// MaxSize returns an estimate of the maximum number of values a tree may hold.
func (t *Tree[T]) MaxSize() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		sz = 1
	}
	return math.MaxInt / (nodeOverhead * sz)
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height(t.root)
}

func (t *Tree[T]) height(h alloc.Handle) int {
	if h == alloc.Nil {
		return 0
	}
	return 1 + max(t.height(t.n(h).left), t.height(t.n(h).right))
}

func (t *Tree[T]) equal(a, b T) bool {
	return !t.cfg.Less(a, b) && !t.cfg.Less(b, a)
}

// --- Iterator positions ----------------------------------------------------

// Start returns an iterator to the minimum value, or End() if the tree is
// empty.
func (t *Tree[T]) Start() Iterator[T] {
	if t.root == alloc.Nil {
		return t.End()
	}
	return t.iter(t.minimum(t.root))
}

// Edge returns an iterator to the maximum value, or End() if the tree is
// empty. Note that Edge is not a past-the-end position.
func (t *Tree[T]) Edge() Iterator[T] {
	if t.root == alloc.Nil {
		return t.End()
	}
	return t.iter(t.maximum(t.root))
}

// End returns the null iterator, which is positioned past the maximum value.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{s: t.store}
}

// All iterates over the values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == alloc.Nil {
			return
		}
		for h := t.minimum(t.root); h != alloc.Nil; h = t.successor(h) {
			if !yield(t.n(h).value) {
				return
			}
		}
	}
}

// Backward iterates over the values in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == alloc.Nil {
			return
		}
		for h := t.maximum(t.root); h != alloc.Nil; h = t.predecessor(h) {
			if !yield(t.n(h).value) {
				return
			}
		}
	}
}

// --- Searching -------------------------------------------------------------

// Find searches for a value equal to value. If there is none, Find returns
// End() and false. With duplicates present, any of the equal values may be
// found.
func (t *Tree[T]) Find(value T) (Iterator[T], bool) {
	cur := t.root
	for cur != alloc.Nil {
		x := t.n(cur)
		if t.cfg.Less(value, x.value) {
			cur = x.left
		} else if t.cfg.Less(x.value, value) {
			cur = x.right
		} else {
			return t.iter(cur), true
		}
	}
	return t.End(), false
}

// Contains reports whether a value equal to value is present.
func (t *Tree[T]) Contains(value T) bool {
	_, found := t.Find(value)
	return found
}

// LowerBound returns an iterator to the first value not less than value, or
// End() if there is none.
func (t *Tree[T]) LowerBound(value T) Iterator[T] {
	cur, result := t.root, alloc.Nil
	for cur != alloc.Nil {
		x := t.n(cur)
		if !t.cfg.Less(x.value, value) {
			result = cur
			cur = x.left
		} else {
			cur = x.right
		}
	}
	return t.iter(result)
}

// UpperBound returns an iterator to the first value greater than value, or
// End() if there is none.
func (t *Tree[T]) UpperBound(value T) Iterator[T] {
	cur, result := t.root, alloc.Nil
	for cur != alloc.Nil {
		x := t.n(cur)
		if t.cfg.Less(value, x.value) {
			result = cur
			cur = x.left
		} else {
			cur = x.right
		}
	}
	return t.iter(result)
}

// EqualRange returns the range [LowerBound(value), UpperBound(value)), i.e.,
// all values equal to value.
func (t *Tree[T]) EqualRange(value T) (Iterator[T], Iterator[T]) {
	return t.LowerBound(value), t.UpperBound(value)
}

// Count returns the number of values equal to value.
func (t *Tree[T]) Count(value T) int {
	n := 0
	first, last := t.EqualRange(value)
	for it := first; it != last; it = it.Next() {
		n++
	}
	return n
}

// --- Insertion -------------------------------------------------------------

// descend finds the attachment point for value. If unique is set and an equal
// value exists, its node is returned as dup. Equal values descend to the
// right, which places a new value behind all values equal to it.
func (t *Tree[T]) descend(value T, unique bool) (parent alloc.Handle, right bool, dup alloc.Handle) {
	cur := t.root
	for cur != alloc.Nil {
		x := t.n(cur)
		if unique && t.equal(value, x.value) {
			return parent, right, cur
		}
		parent = cur
		if t.cfg.Less(value, x.value) {
			right = false
			cur = x.left
		} else {
			right = true
			cur = x.right
		}
	}
	return parent, right, alloc.Nil
}

// Insert stores value unless an equal value is present. It returns an
// iterator to the new value and true, or an iterator to the existing value
// and false.
func (t *Tree[T]) Insert(value T) (Iterator[T], bool) {
	parent, right, dup := t.descend(value, true)
	if dup != alloc.Nil {
		return t.iter(dup), false
	}
	return t.iter(t.attach(parent, right, value)), true
}

// InsertAll stores value even if equal values are present. It always reports
// true.
func (t *Tree[T]) InsertAll(value T) (Iterator[T], bool) {
	parent, right, _ := t.descend(value, false)
	return t.iter(t.attach(parent, right, value)), true
}

// InsertOrAssign stores value. If an equal value is present, it is
// overwritten in place and InsertOrAssign reports false.
func (t *Tree[T]) InsertOrAssign(value T) (Iterator[T], bool) {
	parent, right, dup := t.descend(value, true)
	if dup != alloc.Nil {
		t.n(dup).value = value
		return t.iter(dup), false
	}
	return t.iter(t.attach(parent, right, value)), true
}

// attach links a new red leaf below parent and rebalances. Nothing is linked
// before the node has been allocated, so a failing allocation leaves the tree
// untouched.
func (t *Tree[T]) attach(parent alloc.Handle, right bool, value T) alloc.Handle {
	h := t.newNode(value, Red)
	if parent == alloc.Nil {
		t.root = h
	} else {
		t.n(h).parent = parent
		if right {
			t.n(parent).right = h
		} else {
			t.n(parent).left = h
		}
	}
	t.size++
	t.fixInsert(h)
	return h
}

// --- Removal ---------------------------------------------------------------

func (t *Tree[T]) owns(it Iterator[T]) bool {
	return it.s == t.store && it.Valid()
}

// Erase removes the value at pos.
//
// If the node at pos has two children, its value is exchanged with the value
// of its in-order successor and the successor's node is removed instead. pos
// then continues to be valid and refers to the successor value, while
// iterators to the successor are invalidated.
//
// Erase fails with ErrInvalidIterator if pos does not refer to a live value
// of t.
func (t *Tree[T]) Erase(pos Iterator[T]) error {
	if !t.owns(pos) {
		tracer().Errorf("rbtree: erase through invalid iterator")
		return fmt.Errorf("%w: cannot erase", containers.ErrInvalidIterator)
	}
	if t.size == 1 {
		t.Clear()
		return nil
	}
	t.remove(pos.h)
	return nil
}

// Delete removes a value equal to value, if present.
func (t *Tree[T]) Delete(value T) bool {
	it, found := t.Find(value)
	if !found {
		return false
	}
	return t.Erase(it) == nil
}

func (t *Tree[T]) remove(z alloc.Handle) {
	x := t.n(z)
	if x.left != alloc.Nil && x.right != alloc.Nil {
		s := t.minimum(x.right)
		sn := t.n(s)
		x.value, sn.value = sn.value, x.value
		z, x = s, sn
	}
	// z has at most one child now
	child := x.left
	if child == alloc.Nil {
		child = x.right
	}
	parent := x.parent
	t.relink(z, child)
	if x.color == Black {
		if t.colorOf(child) == Red {
			t.n(child).color = Black
		} else {
			t.fixDelete(child, parent)
		}
	}
	t.freeNode(z)
	t.size--
}

// Clear removes all values.
func (t *Tree[T]) Clear() {
	if t.size == 0 {
		return
	}
	tracer().Debugf("rbtree: clearing %d nodes", t.size)
	t.clearSubtree(t.root)
	t.root = alloc.Nil
	t.size = 0
}

// clearSubtree releases nodes in post-order.
func (t *Tree[T]) clearSubtree(h alloc.Handle) {
	if h == alloc.Nil {
		return
	}
	t.clearSubtree(t.n(h).left)
	t.clearSubtree(t.n(h).right)
	t.freeNode(h)
}

// --- Copying ---------------------------------------------------------------

// Clone returns a deep copy of t with identical shape and colors.
func (t *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{cfg: t.cfg, store: newStore[T]()}
	if t.size > 0 {
		tracer().Debugf("rbtree: copying %d nodes", t.size)
		c.root = c.copySubtree(t, t.root, alloc.Nil)
		c.size = t.size
	}
	return c
}

// copySubtree clones src's subtree at h in pre-order.
func (t *Tree[T]) copySubtree(src *Tree[T], h, parent alloc.Handle) alloc.Handle {
	if h == alloc.Nil {
		return alloc.Nil
	}
	sn := src.n(h)
	c := t.newNode(sn.value, sn.color)
	t.n(c).parent = parent
	left := t.copySubtree(src, sn.left, c)
	right := t.copySubtree(src, sn.right, c)
	t.n(c).left, t.n(c).right = left, right
	return c
}

// Swap exchanges the contents and configuration of t and other in O(1).
// Iterators keep referring to their values: an iterator obtained from t
// belongs to other after the swap, and vice versa.
func (t *Tree[T]) Swap(other *Tree[T]) {
	t.cfg, other.cfg = other.cfg, t.cfg
	t.store, other.store = other.store, t.store
}
