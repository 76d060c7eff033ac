package list

import (
	"cmp"
	"math/bits"

	"github.com/npillmayer/containers/alloc"
)

// SortFunc sorts the list stably according to less.
//
// Nodes are relinked in place, so iterators stay valid and continue to refer
// to the same elements. The sort is a bottom-up merge sort: bucket i holds a
// sorted run of 2^i elements, which makes log2(n)+1 buckets sufficient.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	if l.size < 2 {
		return
	}
	tracer().Debugf("list: sorting %d elements", l.size)
	buckets := make([]alloc.Handle, bits.Len(uint(l.size)))
	h := l.n(l.head).next
	for h != l.head {
		next := l.n(h).next
		l.n(h).next = alloc.Nil
		carry := h
		i := 0
		for ; buckets[i] != alloc.Nil; i++ {
			carry = l.mergeRuns(buckets[i], carry, less)
			buckets[i] = alloc.Nil
		}
		buckets[i] = carry
		h = next
	}
	run := alloc.Nil
	for _, b := range buckets { // lower buckets hold later elements
		run = l.mergeRuns(b, run, less)
	}
	// restore back links and close the ring
	prev := l.head
	for h := run; h != alloc.Nil; h = l.n(h).next {
		l.n(h).prev = prev
		l.n(prev).next = h
		prev = h
	}
	l.n(prev).next = l.head
	l.n(l.head).prev = prev
}

// mergeRuns merges two runs chained by next links and terminated by Nil.
// Elements of a precede equal elements of b.
func (l *List[T]) mergeRuns(a, b alloc.Handle, less func(a, b T) bool) alloc.Handle {
	if a == alloc.Nil {
		return b
	}
	if b == alloc.Nil {
		return a
	}
	var first, last alloc.Handle
	push := func(h alloc.Handle) {
		if last == alloc.Nil {
			first = h
		} else {
			l.n(last).next = h
		}
		last = h
	}
	for a != alloc.Nil && b != alloc.Nil {
		if less(l.n(b).value, l.n(a).value) {
			h := b
			b = l.n(b).next
			push(h)
		} else {
			h := a
			a = l.n(a).next
			push(h)
		}
	}
	if a == alloc.Nil {
		a = b
	}
	l.n(last).next = a
	return first
}

// Sort sorts a list of an ordered element type ascendingly.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Less[T])
}
