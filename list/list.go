package list

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
)

type node[T any] struct {
	value T
	prev  alloc.Handle
	next  alloc.Handle
}

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	nodes *alloc.LinearAllocator[node[T]]
	head  alloc.Handle // sentinel
	size  int
}

// New creates an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.init()
	return l
}

// NewN creates a list of n copies of fill.
func NewN[T any](n int, fill T) *List[T] {
	l := New[T]()
	for range n {
		l.PushBack(fill)
	}
	return l
}

// From creates a list holding values, in order.
func From[T any](values ...T) *List[T] {
	l := New[T]()
	l.InsertManyBack(values...)
	return l
}

func (l *List[T]) init() {
	if l.nodes != nil {
		return
	}
	l.nodes = alloc.New[node[T]]()
	l.head = l.nodes.Allocate()
	l.nodes.Construct(l.head, node[T]{prev: l.head, next: l.head})
}

func (l *List[T]) n(h alloc.Handle) *node[T] {
	return l.nodes.At(h)
}

func (l *List[T]) iter(h alloc.Handle) Iter[T] {
	return newIter(l.nodes, l.head, h)
}

// Clone returns an independent copy of l.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for x := range l.All() {
		c.PushBack(x)
	}
	return c
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// MaxSize returns the maximum number of elements a list may hold.
func (l *List[T]) MaxSize() int {
	l.init()
	return l.nodes.MaxSize() - 1
}

// Front returns the first element.
func (l *List[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: front of empty list", containers.ErrLogic)
	}
	return l.n(l.n(l.head).next).value, nil
}

// Back returns the last element.
func (l *List[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: back of empty list", containers.ErrLogic)
	}
	return l.n(l.n(l.head).prev).value, nil
}

// Begin returns an iterator to the first element, or End() for an empty list.
func (l *List[T]) Begin() Iter[T] {
	l.init()
	return l.iter(l.n(l.head).next)
}

// End returns an iterator to the sentinel position past the last element.
func (l *List[T]) End() Iter[T] {
	l.init()
	return l.iter(l.head)
}

// All iterates over the elements, front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.nodes == nil {
			return
		}
		for h := l.n(l.head).next; h != l.head; h = l.n(h).next {
			if !yield(l.n(h).value) {
				return
			}
		}
	}
}

// Backward iterates over the elements, back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.nodes == nil {
			return
		}
		for h := l.n(l.head).prev; h != l.head; h = l.n(h).prev {
			if !yield(l.n(h).value) {
				return
			}
		}
	}
}

func (l *List[T]) checkOwn(pos Iter[T]) {
	assert(pos.nodes != nil && pos.nodes == l.nodes, "list: iterator belongs to a different list")
	assert(pos.h == l.head || pos.Valid(), "list: stale iterator")
}

// link puts a new node holding value in front of h.
func (l *List[T]) link(h alloc.Handle, value T) alloc.Handle {
	x := l.nodes.Allocate()
	prev := l.n(h).prev
	l.nodes.Construct(x, node[T]{value: value, prev: prev, next: h})
	l.n(prev).next = x
	l.n(h).prev = x
	l.size++
	return x
}

func (l *List[T]) unlink(h alloc.Handle) alloc.Handle {
	x := l.n(h)
	next := x.next
	l.n(x.prev).next = next
	l.n(next).prev = x.prev
	l.nodes.Destroy(h)
	l.nodes.Deallocate(h)
	l.size--
	return next
}

// Insert inserts value in front of pos and returns an iterator to it.
func (l *List[T]) Insert(pos Iter[T], value T) Iter[T] {
	l.init()
	l.checkOwn(pos)
	return l.iter(l.link(pos.h, value))
}

// InsertMany inserts values in front of pos, keeping their order. It returns
// an iterator to the first inserted element, or pos if values is empty.
func (l *List[T]) InsertMany(pos Iter[T], values ...T) Iter[T] {
	l.init()
	l.checkOwn(pos)
	if len(values) == 0 {
		return pos
	}
	first := l.link(pos.h, values[0])
	for _, x := range values[1:] {
		l.link(pos.h, x)
	}
	return l.iter(first)
}

// InsertManyFront inserts values in front of the first element, keeping
// their order.
func (l *List[T]) InsertManyFront(values ...T) {
	l.InsertMany(l.Begin(), values...)
}

// InsertManyBack appends values, keeping their order.
func (l *List[T]) InsertManyBack(values ...T) {
	l.InsertMany(l.End(), values...)
}

// Erase removes the element at pos and returns an iterator to the element
// which followed it.
func (l *List[T]) Erase(pos Iter[T]) Iter[T] {
	assert(pos.nodes == l.nodes && pos.Valid(), "list: erase through invalid iterator")
	return l.iter(l.unlink(pos.h))
}

// PushBack appends value.
func (l *List[T]) PushBack(value T) {
	l.init()
	l.link(l.head, value)
}

// PushFront prepends value.
func (l *List[T]) PushFront(value T) {
	l.init()
	l.link(l.n(l.head).next, value)
}

// PopBack removes the last element, if any.
func (l *List[T]) PopBack() {
	if l.size > 0 {
		l.unlink(l.n(l.head).prev)
	}
}

// PopFront removes the first element, if any.
func (l *List[T]) PopFront() {
	if l.size > 0 {
		l.unlink(l.n(l.head).next)
	}
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	for l.size > 0 {
		l.unlink(l.n(l.head).next)
	}
}

// Swap exchanges the contents of l and other. Iterators keep referring to
// their elements, which now belong to the other list.
func (l *List[T]) Swap(other *List[T]) {
	l.nodes, other.nodes = other.nodes, l.nodes
	l.head, other.head = other.head, l.head
	l.size, other.size = other.size, l.size
}

// Reverse reverses the order of the elements.
func (l *List[T]) Reverse() {
	if l.size < 2 {
		return
	}
	h := l.head
	for {
		x := l.n(h)
		x.prev, x.next = x.next, x.prev
		h = x.prev // former next
		if h == l.head {
			return
		}
	}
}

// UniqueFunc removes all but the first element of every run of consecutive
// elements which are equal according to eq.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) {
	if l.size < 2 {
		return
	}
	first := l.n(l.head).next
	for h := l.n(first).next; h != l.head; {
		if eq(l.n(first).value, l.n(h).value) {
			h = l.unlink(h)
		} else {
			first, h = h, l.n(h).next
		}
	}
}

// Unique removes consecutive duplicate elements.
func Unique[T comparable](l *List[T]) {
	l.UniqueFunc(func(a, b T) bool { return a == b })
}

// Splice moves all elements of other in front of pos, keeping their order,
// and leaves other empty.
func (l *List[T]) Splice(pos Iter[T], other *List[T]) {
	if other == l || other.IsEmpty() {
		return
	}
	l.init()
	l.checkOwn(pos)
	for x := range other.All() {
		l.link(pos.h, x)
	}
	other.Clear()
}

// MergeFunc merges the elements of other into l and leaves other empty. Both
// lists must be sorted according to less. The merge is stable: of equal
// elements, those from l come first.
func (l *List[T]) MergeFunc(other *List[T], less func(a, b T) bool) {
	if other == l || other.IsEmpty() {
		return
	}
	l.init()
	tracer().Debugf("list: merging %d elements into %d", other.Len(), l.Len())
	h := l.n(l.head).next
	for x := range other.All() {
		for h != l.head && !less(x, l.n(h).value) {
			h = l.n(h).next
		}
		l.link(h, x)
	}
	other.Clear()
}

// Merge merges the sorted list other into the sorted list l.
func Merge[T cmp.Ordered](l, other *List[T]) {
	l.MergeFunc(other, cmp.Less[T])
}

// Less reports whether list a is lexicographically less than list b.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return containers.LexicographicalCompare(a.All(), b.All())
}
