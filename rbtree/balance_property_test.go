package rbtree

import (
	"encoding/binary"
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./rbtree -run TestRandomizedBalanceProperty -count=1
//   - Fuzz test for this file:
//     go test ./rbtree -run '^$' -fuzz FuzzRandomizedBalanceProperty -fuzztime=10s

// model is a sorted slice holding the same multiset of values as the tree.
type model []int

func (m model) insert(x int) model {
	i, _ := slices.BinarySearch(m, x)
	for i < len(m) && m[i] == x { // behind all equal values
		i++
	}
	return slices.Insert(m, i, x)
}

func (m model) delete(x int) (model, bool) {
	i, found := slices.BinarySearch(m, x)
	if !found {
		return m, false
	}
	return slices.Delete(m, i, i+1), true
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], m model) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if tree.Len() != len(m) {
		t.Fatalf("size mismatch: got=%d want=%d", tree.Len(), len(m))
	}
	i := 0
	for x := range tree.All() {
		if x != m[i] {
			t.Fatalf("model mismatch at %d: got=%d want=%d", i, x, m[i])
		}
		i++
	}
	if !tree.IsBalanced() {
		t.Fatalf("tree with %d values is unbalanced", tree.Len())
	}
}

type op struct {
	erase bool
	value int
}

func applyOps(t *testing.T, ops []op, checkEvery int) {
	t.Helper()
	tree := NewOrdered[int]()
	var m model
	for i, o := range ops {
		if o.erase {
			var ok bool
			m, ok = m.delete(o.value)
			if tree.Delete(o.value) != ok {
				t.Fatalf("op %d: Delete(%d) disagrees with model", i, o.value)
			}
		} else {
			tree.InsertAll(o.value)
			m = m.insert(o.value)
		}
		if checkEvery > 0 && i%checkEvery == 0 {
			assertTreeMatchesModel(t, tree, m)
		}
	}
	assertTreeMatchesModel(t, tree, m)
	for len(m) > 0 {
		x := m[len(m)/2]
		m, _ = m.delete(x)
		if !tree.Delete(x) {
			t.Fatalf("draining: value %d not found", x)
		}
	}
	assertTreeMatchesModel(t, tree, m)
}

func randomOps(r *rand.Rand, n int, keyspace int) []op {
	ops := make([]op, n)
	for i := range ops {
		ops[i] = op{
			erase: r.Intn(3) == 0,
			value: r.Intn(keyspace),
		}
	}
	return ops
}

func TestRandomizedBalanceProperty(t *testing.T) {
	seeds := []int64{1, 7, 42, 20211209}
	for _, seed := range seeds {
		r := rand.New(rand.NewSource(seed))
		applyOps(t, randomOps(r, 2000, 500), 1)
	}
}

func TestRandomizedBalancePropertyLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large property test in short mode")
	}
	r := rand.New(rand.NewSource(4711))
	ops := randomOps(r, 10000, 1<<20)
	for i := range ops {
		ops[i].erase = false
	}
	applyOps(t, ops, 1)
}

func TestAscendingAndDescendingRuns(t *testing.T) {
	var ops []op
	for x := range 1000 {
		ops = append(ops, op{value: x})
	}
	for x := 2000; x > 1000; x-- {
		ops = append(ops, op{value: x})
	}
	for x := 0; x < 2000; x += 3 {
		ops = append(ops, op{erase: true, value: x})
	}
	applyOps(t, ops, 1)
}

func FuzzRandomizedBalanceProperty(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	f.Add([]byte{9, 9, 9, 9, 200, 9, 201, 9})
	f.Add([]byte{255, 0, 255, 1, 255, 2, 128, 128})
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 4096 {
			data = data[:4096]
		}
		var ops []op
		for len(data) >= 2 {
			v := binary.BigEndian.Uint16(data)
			data = data[2:]
			ops = append(ops, op{erase: v&0x8000 != 0, value: int(v & 0x3f)})
		}
		applyOps(t, ops, 1)
	})
}
