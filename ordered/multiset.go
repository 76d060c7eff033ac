package ordered

import (
	"cmp"
	"fmt"
	"io"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/rbtree"
)

// Multiset is an ordered collection of keys which may occur more than once.
// Equal keys are kept in insertion order.
type Multiset[K any] struct {
	tree *rbtree.Tree[K]
}

// NewMultiset creates a multiset ordering keys ascendingly, filled with keys.
func NewMultiset[K cmp.Ordered](keys ...K) *Multiset[K] {
	ms := &Multiset[K]{tree: rbtree.NewOrdered[K]()}
	for _, k := range keys {
		ms.tree.InsertAll(k)
	}
	return ms
}

// NewMultisetFunc creates an empty multiset with keys ordered by less.
func NewMultisetFunc[K any](less func(a, b K) bool) (*Multiset[K], error) {
	tree, err := rbtree.New(rbtree.Config[K]{Less: less})
	if err != nil {
		return nil, fmt.Errorf("cannot create multiset: %w", err)
	}
	return &Multiset[K]{tree: tree}, nil
}

// Len returns the number of keys, counting duplicates.
func (ms *Multiset[K]) Len() int {
	return ms.tree.Len()
}

// IsEmpty reports whether the multiset has no keys.
func (ms *Multiset[K]) IsEmpty() bool {
	return ms.tree.IsEmpty()
}

// MaxSize returns an estimate of the maximum number of keys.
func (ms *Multiset[K]) MaxSize() int {
	return ms.tree.MaxSize()
}

// Begin returns an iterator to the first of the smallest keys.
func (ms *Multiset[K]) Begin() SetIterator[K] {
	return ms.tree.Start()
}

// Last returns an iterator to the last of the largest keys.
func (ms *Multiset[K]) Last() SetIterator[K] {
	return ms.tree.Edge()
}

// End returns the null iterator past Last.
func (ms *Multiset[K]) End() SetIterator[K] {
	return ms.tree.End()
}

// Insert adds key behind all keys equal to it and returns its position.
func (ms *Multiset[K]) Insert(key K) SetIterator[K] {
	it, _ := ms.tree.InsertAll(key)
	return it
}

// InsertMany inserts keys in order and returns one result per key. All
// results report Inserted.
func (ms *Multiset[K]) InsertMany(keys ...K) []InsertResult[SetIterator[K]] {
	results := make([]InsertResult[SetIterator[K]], 0, len(keys))
	for _, k := range keys {
		it, ok := ms.tree.InsertAll(k)
		results = append(results, InsertResult[SetIterator[K]]{Iter: it, Inserted: ok})
	}
	return results
}

// Erase removes the key at pos. It returns a *containers.EraseError if pos
// does not refer to a key of ms.
func (ms *Multiset[K]) Erase(pos SetIterator[K]) error {
	if err := ms.tree.Erase(pos); err != nil {
		return containers.NewEraseError("multiset", err)
	}
	return nil
}

// Delete removes one occurrence of key and reports whether there was one.
func (ms *Multiset[K]) Delete(key K) bool {
	return ms.tree.Delete(key)
}

// DeleteAll removes every occurrence of key and returns how many have been
// removed.
func (ms *Multiset[K]) DeleteAll(key K) int {
	n := 0
	for ms.tree.Delete(key) {
		n++
	}
	return n
}

// Count returns the number of occurrences of key.
func (ms *Multiset[K]) Count(key K) int {
	return ms.tree.Count(key)
}

// LowerBound returns an iterator to the first key not less than key, or End().
func (ms *Multiset[K]) LowerBound(key K) SetIterator[K] {
	return ms.tree.LowerBound(key)
}

// UpperBound returns an iterator to the first key greater than key, or End().
func (ms *Multiset[K]) UpperBound(key K) SetIterator[K] {
	return ms.tree.UpperBound(key)
}

// EqualRange returns the range of keys equal to key as [first, last).
func (ms *Multiset[K]) EqualRange(key K) (SetIterator[K], SetIterator[K]) {
	return ms.tree.EqualRange(key)
}

// Find returns an iterator to the first occurrence of key, or End() and
// false.
func (ms *Multiset[K]) Find(key K) (SetIterator[K], bool) {
	it := ms.tree.LowerBound(key)
	if it == ms.tree.End() || ms.tree.Config().Less(key, it.Value()) {
		return ms.tree.End(), false
	}
	return it, true
}

// Contains reports whether key occurs at least once.
func (ms *Multiset[K]) Contains(key K) bool {
	return ms.tree.Contains(key)
}

// Merge inserts all keys of other into ms and leaves other empty.
func (ms *Multiset[K]) Merge(other *Multiset[K]) {
	if other == ms {
		return
	}
	tracer().Debugf("ordered: merging %d multiset keys", other.Len())
	for k := range other.tree.All() {
		ms.tree.InsertAll(k)
	}
	other.Clear()
}

// Clear removes all keys.
func (ms *Multiset[K]) Clear() {
	ms.tree.Clear()
}

// Swap exchanges the contents of ms and other. Iterators follow their keys.
func (ms *Multiset[K]) Swap(other *Multiset[K]) {
	ms.tree.Swap(other.tree)
}

// Clone returns a deep copy of ms.
func (ms *Multiset[K]) Clone() *Multiset[K] {
	return &Multiset[K]{tree: ms.tree.Clone()}
}

// All iterates over the keys in order, including duplicates.
func (ms *Multiset[K]) All() iter.Seq[K] {
	return ms.tree.All()
}

// IsBalanced reports whether the underlying tree is balanced.
func (ms *Multiset[K]) IsBalanced() bool {
	return ms.tree.IsBalanced()
}

// Check validates the invariants of the underlying tree.
func (ms *Multiset[K]) Check() error {
	return ms.tree.Check()
}

// Fprint dumps the underlying tree to w.
func (ms *Multiset[K]) Fprint(w io.Writer, cfg *rbtree.PrintConfig) error {
	return ms.tree.Fprint(w, cfg)
}
