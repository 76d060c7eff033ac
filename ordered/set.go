package ordered

import (
	"cmp"
	"fmt"
	"io"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/rbtree"
)

// SetIterator is a bidirectional iterator over the keys of a Set or a
// Multiset. Keys must not be modified through Ref in a way which changes
// their ordering.
type SetIterator[K any] = rbtree.Iterator[K]

// Set is an ordered set of unique keys.
type Set[K any] struct {
	tree *rbtree.Tree[K]
}

// NewSet creates a set ordering keys ascendingly, filled with keys.
func NewSet[K cmp.Ordered](keys ...K) *Set[K] {
	s := &Set[K]{tree: rbtree.NewOrdered[K]()}
	for _, k := range keys {
		s.tree.Insert(k)
	}
	return s
}

// NewSetFunc creates an empty set with keys ordered by less.
func NewSetFunc[K any](less func(a, b K) bool) (*Set[K], error) {
	tree, err := rbtree.New(rbtree.Config[K]{Less: less})
	if err != nil {
		return nil, fmt.Errorf("cannot create set: %w", err)
	}
	return &Set[K]{tree: tree}, nil
}

// Len returns the number of keys.
func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// IsEmpty reports whether the set has no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// MaxSize returns an estimate of the maximum number of keys.
func (s *Set[K]) MaxSize() int {
	return s.tree.MaxSize()
}

// Begin returns an iterator to the smallest key.
func (s *Set[K]) Begin() SetIterator[K] {
	return s.tree.Start()
}

// Last returns an iterator to the largest key.
func (s *Set[K]) Last() SetIterator[K] {
	return s.tree.Edge()
}

// End returns the null iterator past Last.
func (s *Set[K]) End() SetIterator[K] {
	return s.tree.End()
}

// Insert adds key unless it is present. It returns an iterator to key in the
// set and whether key has been inserted.
func (s *Set[K]) Insert(key K) (SetIterator[K], bool) {
	return s.tree.Insert(key)
}

// InsertMany inserts keys in order and returns one result per key.
func (s *Set[K]) InsertMany(keys ...K) []InsertResult[SetIterator[K]] {
	results := make([]InsertResult[SetIterator[K]], 0, len(keys))
	for _, k := range keys {
		it, ok := s.tree.Insert(k)
		results = append(results, InsertResult[SetIterator[K]]{Iter: it, Inserted: ok})
	}
	return results
}

// Erase removes the key at pos. It returns a *containers.EraseError if pos
// does not refer to a key of s.
func (s *Set[K]) Erase(pos SetIterator[K]) error {
	if err := s.tree.Erase(pos); err != nil {
		return containers.NewEraseError("set", err)
	}
	return nil
}

// Delete removes key and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	return s.tree.Delete(key)
}

// Find returns an iterator to key, or End() and false.
func (s *Set[K]) Find(key K) (SetIterator[K], bool) {
	return s.tree.Find(key)
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// LowerBound returns an iterator to the first key not less than key, or End().
func (s *Set[K]) LowerBound(key K) SetIterator[K] {
	return s.tree.LowerBound(key)
}

// UpperBound returns an iterator to the first key greater than key, or End().
func (s *Set[K]) UpperBound(key K) SetIterator[K] {
	return s.tree.UpperBound(key)
}

// Merge inserts all keys of other into s and leaves other empty.
func (s *Set[K]) Merge(other *Set[K]) {
	if other == s {
		return
	}
	tracer().Debugf("ordered: merging %d set keys", other.Len())
	for k := range other.tree.All() {
		s.tree.Insert(k)
	}
	other.Clear()
}

// Clear removes all keys.
func (s *Set[K]) Clear() {
	s.tree.Clear()
}

// Swap exchanges the contents of s and other. Iterators follow their keys.
func (s *Set[K]) Swap(other *Set[K]) {
	s.tree.Swap(other.tree)
}

// Clone returns a deep copy of s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{tree: s.tree.Clone()}
}

// All iterates over the keys in order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.tree.All()
}

// IsBalanced reports whether the underlying tree is balanced.
func (s *Set[K]) IsBalanced() bool {
	return s.tree.IsBalanced()
}

// Check validates the invariants of the underlying tree.
func (s *Set[K]) Check() error {
	return s.tree.Check()
}

// Fprint dumps the underlying tree to w.
func (s *Set[K]) Fprint(w io.Writer, cfg *rbtree.PrintConfig) error {
	return s.tree.Fprint(w, cfg)
}
