package ordered

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/containers"
)

func TestMultisetCountAndBounds(t *testing.T) {
	ms := NewMultiset(1, 2, 3, 4, 5, 5, 5, 5, -4)
	if ms.Count(5) != 4 {
		t.Fatalf("Count(5) = %d", ms.Count(5))
	}
	first, last := ms.LowerBound(5), ms.UpperBound(5)
	n := 0
	for it := first; it != last; it = it.Next() {
		if it.Value() != 5 {
			t.Fatalf("bounds enclose %d", it.Value())
		}
		n++
	}
	if n != 4 {
		t.Fatalf("bounds enclose %d values, want 4", n)
	}
	if first.Prev().Value() != 4 {
		t.Fatalf("value before the 5's should be 4")
	}
	lo, hi := ms.EqualRange(6)
	if lo != hi || lo != ms.End() {
		t.Fatalf("empty range for absent key expected")
	}
	if ms.Count(0) != 0 || ms.Begin().Value() != -4 {
		t.Fatalf("unexpected minimum or count")
	}
	if err := ms.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

type tagged struct {
	key, tag int
}

func TestMultisetKeepsInsertionOrderOfEquals(t *testing.T) {
	ms, err := NewMultisetFunc(func(a, b tagged) bool { return a.key < b.key })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, k := range []int{2, 1, 2, 2, 1, 3, 2} {
		ms.Insert(tagged{key: k, tag: i})
	}
	var tags []int
	lo, hi := ms.EqualRange(tagged{key: 2})
	for it := lo; it != hi; it = it.Next() {
		tags = append(tags, it.Value().tag)
	}
	if !slices.Equal(tags, []int{0, 2, 3, 6}) {
		t.Fatalf("equal keys out of insertion order: %v", tags)
	}
	it, found := ms.Find(tagged{key: 2})
	if !found || it.Value().tag != 0 {
		t.Fatalf("Find must return the first occurrence")
	}
	if _, found := ms.Find(tagged{key: 4}); found {
		t.Fatalf("found absent key")
	}
}

func TestMultisetDeleteAndMerge(t *testing.T) {
	ms := NewMultiset(3, 3, 3, 1)
	if !ms.Delete(3) || ms.Count(3) != 2 {
		t.Fatalf("Delete must remove one occurrence")
	}
	if n := ms.DeleteAll(3); n != 2 || ms.Contains(3) {
		t.Fatalf("DeleteAll removed %d", n)
	}
	other := NewMultiset(1, 2)
	results := ms.InsertMany(2, 2)
	for _, r := range results {
		if !r.Inserted {
			t.Fatalf("multiset insertion must always succeed")
		}
	}
	ms.Merge(other)
	if !other.IsEmpty() {
		t.Fatalf("merge must drain the source")
	}
	if got := slices.Collect(ms.All()); !slices.Equal(got, []int{1, 1, 2, 2, 2}) {
		t.Fatalf("unexpected keys %v", got)
	}
	err := ms.Erase(ms.End())
	var eraseErr *containers.EraseError
	if !errors.As(err, &eraseErr) || eraseErr.Container != "multiset" {
		t.Fatalf("expected EraseError for multiset, got %v", err)
	}
	if err := ms.Erase(ms.Last()); err != nil || ms.Len() != 4 {
		t.Fatalf("erase of last failed: %v", err)
	}
}

func TestMultisetCloneIndependence(t *testing.T) {
	ms := NewMultiset(4, 4, 2)
	c := ms.Clone()
	c.Insert(4)
	if ms.Count(4) != 2 || c.Count(4) != 3 {
		t.Fatalf("clone not independent")
	}
	ms.Swap(c)
	if ms.Count(4) != 3 {
		t.Fatalf("swap failed")
	}
	ms.Clear()
	if !ms.IsEmpty() || ms.Begin() != ms.End() {
		t.Fatalf("clear failed")
	}
}
