package ordered

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMapAtAndRef(t *testing.T) {
	m := NewMap(containers.MakePair(1, "one"))
	if v, err := m.At(1); err != nil || v != "one" {
		t.Fatalf("At(1) = %q, %v", v, err)
	}
	if _, err := m.At(2); !errors.Is(err, containers.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("At must not grow the map")
	}
	if v := *m.Ref(2); v != "" {
		t.Fatalf("Ref of missing key should yield zero value, got %q", v)
	}
	if m.Len() != 2 {
		t.Fatalf("Ref of missing key must insert an entry, len=%d", m.Len())
	}
	*m.Ref(2) = "two"
	if v, _ := m.At(2); v != "two" {
		t.Fatalf("assignment through Ref lost, got %q", v)
	}
}

func TestMapRefSurvivesGrowth(t *testing.T) {
	m := NewMap[int, int]()
	p := m.Ref(0)
	for k := 1; k < 1000; k++ {
		*m.Ref(k) = k
	}
	*p = -1
	if v, _ := m.At(0); v != -1 {
		t.Fatalf("pointer from Ref went stale after growth")
	}
}

func TestMapInsertRejectsDuplicateKeys(t *testing.T) {
	m := NewMap[string, int]()
	if _, ok := m.InsertKV("a", 1); !ok {
		t.Fatalf("first insert must succeed")
	}
	it, ok := m.InsertKV("a", 2)
	if ok {
		t.Fatalf("duplicate key must be rejected")
	}
	if it.Value().Second != 1 {
		t.Fatalf("existing entry must be untouched, got %v", it.Value())
	}
	if _, ok := m.InsertOrAssign("a", 3); ok {
		t.Fatalf("InsertOrAssign on present key must report false")
	}
	if v, _ := m.At("a"); v != 3 {
		t.Fatalf("InsertOrAssign did not overwrite, got %d", v)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", m.Len())
	}
}

func TestMapInsertMany(t *testing.T) {
	m := NewMap[int, string]()
	results := m.InsertMany(
		containers.MakePair(2, "b"),
		containers.MakePair(1, "a"),
		containers.MakePair(2, "x"),
	)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	want := []bool{true, true, false}
	for i, r := range results {
		if r.Inserted != want[i] {
			t.Fatalf("result %d: inserted=%v", i, r.Inserted)
		}
	}
	if results[2].Iter != results[0].Iter {
		t.Fatalf("rejected insert must refer to the blocking entry")
	}
}

func TestMapMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	map1 := NewMap(containers.MakePair(1, "one"), containers.MakePair(2, "two"))
	map2 := NewMap(containers.MakePair(3, "three"), containers.MakePair(4, "four"))
	map1.Merge(map2)
	if map1.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", map1.Len())
	}
	if !map2.IsEmpty() {
		t.Fatalf("merge must drain the source")
	}
	if v := *map1.Ref(3); v != "three" {
		t.Fatalf("map1[3] = %q", v)
	}
	if err := map1.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestMapMergeKeepsExistingEntries(t *testing.T) {
	a := NewMap(containers.MakePair(1, "a"))
	b := NewMap(containers.MakePair(1, "b"), containers.MakePair(2, "c"))
	a.Merge(b)
	if v, _ := a.At(1); v != "a" {
		t.Fatalf("merge overwrote existing entry with %q", v)
	}
	if a.Len() != 2 || b.Len() != 0 {
		t.Fatalf("unexpected sizes %d/%d", a.Len(), b.Len())
	}
	a.Merge(a)
	if a.Len() != 2 {
		t.Fatalf("self merge changed the map")
	}
}

func TestMapEraseWrapsCause(t *testing.T) {
	m := NewMap(containers.MakePair(1, 1), containers.MakePair(2, 2))
	err := m.Erase(m.End())
	var eraseErr *containers.EraseError
	if !errors.As(err, &eraseErr) || eraseErr.Container != "map" {
		t.Fatalf("expected EraseError for map, got %v", err)
	}
	if !errors.Is(err, containers.ErrInvalidIterator) {
		t.Fatalf("erase error lost its cause: %v", err)
	}
	if err := m.Erase(m.Begin()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Contains(1) || !m.Contains(2) {
		t.Fatalf("wrong entry erased")
	}
	if !m.Delete(2) || m.Delete(2) {
		t.Fatalf("Delete reports wrong results")
	}
}

func TestMapIterationAndClone(t *testing.T) {
	m := NewMap[string, int]()
	for i, k := range []string{"d", "b", "a", "c"} {
		m.InsertKV(k, i)
	}
	keys := slices.Collect(m.Keys())
	if !slices.Equal(keys, []string{"a", "b", "c", "d"}) {
		t.Fatalf("keys out of order: %v", keys)
	}
	values := slices.Collect(m.Values())
	if !slices.Equal(values, []int{2, 1, 3, 0}) {
		t.Fatalf("values out of key order: %v", values)
	}
	c := m.Clone()
	a, b := m.Begin(), c.Begin()
	for a != m.End() {
		if a.Value() != b.Value() {
			t.Fatalf("clone differs: %v != %v", a.Value(), b.Value())
		}
		a, b = a.Next(), b.Next()
	}
	if b != c.End() {
		t.Fatalf("clone is longer than original")
	}
	*c.Ref("a") = 100
	c.Delete("b")
	if v, _ := m.At("a"); v != 2 || !m.Contains("b") {
		t.Fatalf("mutating the clone affected the original")
	}
	if m.Last().Value().First != "d" || m.End().Prev() != m.Last() {
		t.Fatalf("unexpected last position")
	}
	n := 0
	for k := range m.All() {
		if k == "c" {
			break
		}
		n++
	}
	if n != 2 {
		t.Fatalf("early break from All misbehaved, n=%d", n)
	}
}

func TestMapFuncAndSwap(t *testing.T) {
	if _, err := NewMapFunc[int, int](nil); err == nil {
		t.Fatalf("expected error for missing comparator")
	}
	fold := func(a, b string) bool { return strings.ToLower(a) < strings.ToLower(b) }
	m, err := NewMapFunc[string, int](fold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.InsertKV("Key", 1)
	if _, ok := m.InsertKV("KEY", 2); ok {
		t.Fatalf("comparator should treat keys as equal")
	}
	m2, _ := NewMapFunc[string, int](fold)
	m2.InsertKV("x", 9)
	m2.InsertKV("y", 8)
	m.Swap(m2)
	if m.Len() != 2 || m2.Len() != 1 || !m2.Contains("key") {
		t.Fatalf("swap failed")
	}
	m.Clear()
	if !m.IsEmpty() || m.MaxSize() <= 0 {
		t.Fatalf("unexpected state after clear")
	}
}
