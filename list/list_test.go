package list

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func values[T any](l *List[T]) []T {
	return slices.Collect(l.All())
}

func TestZeroListIsUsable(t *testing.T) {
	var l List[int]
	if !l.IsEmpty() || l.Begin() != l.End() {
		t.Fatalf("zero list must be empty")
	}
	if _, err := l.Front(); !errors.Is(err, containers.ErrLogic) {
		t.Fatalf("expected ErrLogic, got %v", err)
	}
	if _, err := l.Back(); !errors.Is(err, containers.ErrLogic) {
		t.Fatalf("expected ErrLogic, got %v", err)
	}
	l.PopBack()
	l.PopFront()
	l.PushBack(1)
	if l.Len() != 1 {
		t.Fatalf("expected 1 element, got %d", l.Len())
	}
	if l.MaxSize() <= 1<<20 {
		t.Fatalf("max size unexpectedly small")
	}
}

func TestPushPopBothEnds(t *testing.T) {
	l := New[int]()
	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)
	if got := values(l); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("unexpected elements %v", got)
	}
	if f, _ := l.Front(); f != 1 {
		t.Fatalf("Front() = %d", f)
	}
	if b, _ := l.Back(); b != 3 {
		t.Fatalf("Back() = %d", b)
	}
	l.PopFront()
	l.PopBack()
	if got := values(l); !slices.Equal(got, []int{2}) {
		t.Fatalf("unexpected elements %v", got)
	}
	if got := slices.Collect(From(1, 2, 3).Backward()); !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatalf("backward iteration wrong: %v", got)
	}
}

func TestIteratorRing(t *testing.T) {
	l := From("a", "b")
	it := l.Begin()
	if it.Value() != "a" || it.Next().Value() != "b" {
		t.Fatalf("forward steps wrong")
	}
	if it.Next().Next() != l.End() || it.Next().Next().Next() != it {
		t.Fatalf("ring does not wrap through End()")
	}
	if l.End().Prev().Value() != "b" {
		t.Fatalf("End().Prev() must be the last element")
	}
	if l.End().Valid() {
		t.Fatalf("End() must not be valid")
	}
	*it.Ref() = "z"
	if f, _ := l.Front(); f != "z" {
		t.Fatalf("write through Ref lost")
	}
}

func TestInsertAndErase(t *testing.T) {
	l := From(1, 4)
	pos := l.Begin().Next()
	it := l.Insert(pos, 3)
	if it.Value() != 3 {
		t.Fatalf("Insert returned wrong position")
	}
	first := l.InsertMany(it, 2, 2)
	if first.Value() != 2 || first.Prev().Value() != 1 {
		t.Fatalf("InsertMany returned wrong position")
	}
	if got := values(l); !slices.Equal(got, []int{1, 2, 2, 3, 4}) {
		t.Fatalf("unexpected elements %v", got)
	}
	next := l.Erase(first)
	if next.Value() != 2 || first.Valid() {
		t.Fatalf("Erase misbehaved")
	}
	l.InsertManyFront(-1, 0)
	l.InsertManyBack(5, 6)
	if got := values(l); !slices.Equal(got, []int{-1, 0, 1, 2, 3, 4, 5, 6}) {
		t.Fatalf("unexpected elements %v", got)
	}
	if l.InsertMany(l.End()) != l.End() {
		t.Fatalf("empty InsertMany must return pos")
	}
}

func TestEraseStaleIteratorPanics(t *testing.T) {
	l := From(1, 2)
	it := l.Begin()
	l.Erase(it)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for stale iterator")
		}
	}()
	l.Erase(it)
}

func TestCloneSwapClear(t *testing.T) {
	l := From(1, 2, 3)
	c := l.Clone()
	c.PushBack(4)
	if l.Len() != 3 || c.Len() != 4 {
		t.Fatalf("clone not independent")
	}
	l.Swap(c)
	if l.Len() != 4 || c.Len() != 3 {
		t.Fatalf("swap failed")
	}
	l.Clear()
	if !l.IsEmpty() || l.Begin() != l.End() {
		t.Fatalf("clear failed")
	}
	if n := NewN(3, "x"); !slices.Equal(values(n), []string{"x", "x", "x"}) {
		t.Fatalf("NewN failed")
	}
}

func TestIteratorsFollowSwappedElements(t *testing.T) {
	a := From(1, 2)
	b := From(100, 200, 300)
	it := a.Begin()
	a.Swap(b)
	if !it.Valid() || it.Value() != 1 || it.Next().Value() != 2 {
		t.Fatalf("iterator lost its element across swap")
	}
	if it.Next().Next() != b.End() {
		t.Fatalf("iterator does not reach the end of the receiving list")
	}
	next := b.Erase(it)
	if next.Value() != 2 || !slices.Equal(values(b), []int{2}) {
		t.Fatalf("erase in receiving list failed: %v", values(b))
	}
	if got := values(a); !slices.Equal(got, []int{100, 200, 300}) {
		t.Fatalf("unexpected elements %v", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for iterator of a different list")
		}
	}()
	a.Insert(next, 0)
}

func TestReverseAndUnique(t *testing.T) {
	l := From(1, 1, 2, 3, 3, 3, 1)
	Unique(l)
	if got := values(l); !slices.Equal(got, []int{1, 2, 3, 1}) {
		t.Fatalf("unique failed: %v", got)
	}
	l.Reverse()
	if got := values(l); !slices.Equal(got, []int{1, 3, 2, 1}) {
		t.Fatalf("reverse failed: %v", got)
	}
	if got := slices.Collect(l.Backward()); !slices.Equal(got, []int{1, 2, 3, 1}) {
		t.Fatalf("back links broken after reverse: %v", got)
	}
}

func TestSpliceAndMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	l := From(1, 5)
	other := From(2, 3, 4)
	l.Splice(l.Begin().Next(), other)
	if got := values(l); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("splice failed: %v", got)
	}
	if !other.IsEmpty() {
		t.Fatalf("splice must drain the source")
	}
	a := From(1, 3, 5, 7)
	b := From(0, 3, 6, 8, 9)
	Merge(a, b)
	if got := values(a); !slices.Equal(got, []int{0, 1, 3, 3, 5, 6, 7, 8, 9}) {
		t.Fatalf("merge failed: %v", got)
	}
	if !b.IsEmpty() {
		t.Fatalf("merge must drain the source")
	}
}

func TestMergeIsStable(t *testing.T) {
	type item struct{ key, src int }
	byKey := func(x, y item) bool { return x.key < y.key }
	a := From(item{1, 0}, item{2, 0})
	b := From(item{1, 1}, item{2, 1})
	a.MergeFunc(b, byKey)
	want := []item{{1, 0}, {1, 1}, {2, 0}, {2, 1}}
	if got := values(a); !slices.Equal(got, want) {
		t.Fatalf("merge not stable: %v", got)
	}
}

func TestLess(t *testing.T) {
	if !Less(From(1, 2), From(1, 3)) || Less(From(1, 3), From(1, 2)) {
		t.Fatalf("lexicographic comparison wrong")
	}
	if !Less(From(1), From(1, 0)) || Less(From(1, 0), From(1, 0)) {
		t.Fatalf("prefix comparison wrong")
	}
	if !containers.Equal(From(1, 2).All(), From(1, 2).All()) {
		t.Fatalf("equal lists compare unequal")
	}
}
