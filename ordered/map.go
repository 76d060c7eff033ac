package ordered

import (
	"cmp"
	"fmt"
	"io"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/rbtree"
)

// MapIterator is a bidirectional iterator over the entries of a Map. Entries
// must not be modified in a way which changes their key.
type MapIterator[K, V any] = rbtree.Iterator[containers.Pair[K, V]]

// Map is an ordered map with unique keys.
type Map[K, V any] struct {
	tree *rbtree.Tree[containers.Pair[K, V]]
}

// NewMap creates a map ordering keys ascendingly, filled with entries.
// For entries with equal keys, the first one wins.
func NewMap[K cmp.Ordered, V any](entries ...containers.Pair[K, V]) *Map[K, V] {
	m, err := NewMapFunc[K, V](cmp.Less[K])
	assert(err == nil, "ordered.NewMap: cannot create map")
	for _, e := range entries {
		m.Insert(e)
	}
	return m
}

// NewMapFunc creates an empty map with keys ordered by less.
func NewMapFunc[K, V any](less func(a, b K) bool) (*Map[K, V], error) {
	if less == nil {
		return nil, fmt.Errorf("%w: map needs a key comparator", rbtree.ErrInvalidConfig)
	}
	tree, err := rbtree.New(rbtree.Config[containers.Pair[K, V]]{
		Less: func(a, b containers.Pair[K, V]) bool { return less(a.First, b.First) },
	})
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

func probe[K, V any](key K) containers.Pair[K, V] {
	var zero V
	return containers.MakePair(key, zero)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// MaxSize returns an estimate of the maximum number of entries.
func (m *Map[K, V]) MaxSize() int {
	return m.tree.MaxSize()
}

// Begin returns an iterator to the entry with the smallest key.
func (m *Map[K, V]) Begin() MapIterator[K, V] {
	return m.tree.Start()
}

// Last returns an iterator to the entry with the largest key.
func (m *Map[K, V]) Last() MapIterator[K, V] {
	return m.tree.Edge()
}

// End returns the null iterator past Last.
func (m *Map[K, V]) End() MapIterator[K, V] {
	return m.tree.End()
}

// At returns the value mapped to key. It fails with containers.ErrOutOfRange
// if key is not present.
func (m *Map[K, V]) At(key K) (V, error) {
	it, found := m.tree.Find(probe[K, V](key))
	if !found {
		var zero V
		return zero, fmt.Errorf("%w: no such key in map: %v", containers.ErrOutOfRange, key)
	}
	return it.Value().Second, nil
}

// Ref returns a pointer to the value mapped to key. If key is not present,
// an entry with a zero value is inserted first. Thus Ref grows the map for
// missing keys, even if used for reading only.
//
// Insertions never move entries in memory, so the pointer survives growth of
// the map. Removing any entry may move values between nodes and invalidates
// the pointer.
func (m *Map[K, V]) Ref(key K) *V {
	it, _ := m.tree.Insert(probe[K, V](key))
	return &it.Ref().Second
}

// Insert stores entry unless its key is present. It returns an iterator to
// the entry with the key and whether entry has been inserted.
func (m *Map[K, V]) Insert(entry containers.Pair[K, V]) (MapIterator[K, V], bool) {
	return m.tree.Insert(entry)
}

// InsertKV is a shortcut for Insert(containers.MakePair(key, value)).
func (m *Map[K, V]) InsertKV(key K, value V) (MapIterator[K, V], bool) {
	return m.tree.Insert(containers.MakePair(key, value))
}

// InsertOrAssign stores value for key, overwriting an existing value. It
// reports false if the key had been present.
func (m *Map[K, V]) InsertOrAssign(key K, value V) (MapIterator[K, V], bool) {
	return m.tree.InsertOrAssign(containers.MakePair(key, value))
}

// InsertMany inserts entries in order and returns one result per entry.
func (m *Map[K, V]) InsertMany(entries ...containers.Pair[K, V]) []InsertResult[MapIterator[K, V]] {
	results := make([]InsertResult[MapIterator[K, V]], 0, len(entries))
	for _, e := range entries {
		it, ok := m.tree.Insert(e)
		results = append(results, InsertResult[MapIterator[K, V]]{Iter: it, Inserted: ok})
	}
	return results
}

// Erase removes the entry at pos. It returns a *containers.EraseError if pos
// does not refer to an entry of m.
func (m *Map[K, V]) Erase(pos MapIterator[K, V]) error {
	if err := m.tree.Erase(pos); err != nil {
		return containers.NewEraseError("map", err)
	}
	return nil
}

// Delete removes the entry for key and reports whether there was one.
func (m *Map[K, V]) Delete(key K) bool {
	return m.tree.Delete(probe[K, V](key))
}

// Find returns an iterator to the entry for key, or End() and false.
func (m *Map[K, V]) Find(key K) (MapIterator[K, V], bool) {
	return m.tree.Find(probe[K, V](key))
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(probe[K, V](key))
}

// Merge inserts all entries of other into m and leaves other empty. Entries
// of other whose key is already present in m are dropped.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	if other == m {
		return
	}
	tracer().Debugf("ordered: merging %d map entries", other.Len())
	for e := range other.tree.All() {
		m.tree.Insert(e)
	}
	other.Clear()
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Swap exchanges the contents of m and other. Iterators follow their entries.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree.Swap(other.tree)
}

// Clone returns a deep copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// All iterates over key/value pairs in key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.tree.All() {
			if !yield(e.First, e.Second) {
				return
			}
		}
	}
}

// Keys iterates over the keys in order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range m.tree.All() {
			if !yield(e.First) {
				return
			}
		}
	}
}

// Values iterates over the mapped values in key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range m.tree.All() {
			if !yield(e.Second) {
				return
			}
		}
	}
}

// IsBalanced reports whether the underlying tree is balanced.
func (m *Map[K, V]) IsBalanced() bool {
	return m.tree.IsBalanced()
}

// Check validates the invariants of the underlying tree.
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}

// Fprint dumps the underlying tree to w.
func (m *Map[K, V]) Fprint(w io.Writer, cfg *rbtree.PrintConfig) error {
	return m.tree.Fprint(w, cfg)
}
