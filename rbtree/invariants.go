package rbtree

import (
	"fmt"

	"github.com/npillmayer/containers/alloc"
)

// IsBalanced reports whether, for every node, the longest path to a leaf is
// at most twice as long as the shortest one. This is implied by, but weaker
// than, the red-black rules; use Check for a strict verification.
func (t *Tree[T]) IsBalanced() bool {
	_, _, ok := t.balancedUtil(t.root)
	return ok
}

func (t *Tree[T]) balancedUtil(h alloc.Handle) (maxh, minh int, ok bool) {
	if h == alloc.Nil {
		return 0, 0, true
	}
	lmax, lmin, ok := t.balancedUtil(t.n(h).left)
	if !ok {
		return 0, 0, false
	}
	rmax, rmin, ok := t.balancedUtil(t.n(h).right)
	if !ok {
		return 0, 0, false
	}
	maxh = max(lmax, rmax) + 1
	minh = min(lmin, rmin) + 1
	return maxh, minh, maxh <= 2*minh
}

// Check validates structural tree invariants: parent links, the red-black
// rules, non-decreasing in-order sequence and the element count.
//
// This checker is intentionally strict and meant to be used in tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	if t.root == alloc.Nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree with size %d", ErrCorrupted, t.size)
		}
		return nil
	}
	if t.n(t.root).parent != alloc.Nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	if t.n(t.root).color != Black {
		return fmt.Errorf("%w: root is red", ErrCorrupted)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes, size %d)", ErrCorrupted, count, t.size)
	}
	if live := t.nodes.Live(); live != t.size {
		return fmt.Errorf("%w: %d nodes allocated for %d values", ErrCorrupted, live, t.size)
	}
	prev := alloc.Nil
	for h := t.minimum(t.root); h != alloc.Nil; h = t.successor(h) {
		if prev != alloc.Nil && t.cfg.Less(t.n(h).value, t.n(prev).value) {
			return fmt.Errorf("%w: in-order sequence not sorted at %v", ErrCorrupted, t.n(h).value)
		}
		prev = h
	}
	return nil
}

// checkNode returns the number of nodes and the black-height of the subtree
// at h. The black-height counts black nodes below h, h excluded.
func (t *Tree[T]) checkNode(h alloc.Handle) (count int, blackHeight int, err error) {
	x := t.n(h)
	for _, c := range [2]alloc.Handle{x.left, x.right} {
		if c == alloc.Nil {
			continue
		}
		if t.n(c).parent != h {
			return 0, 0, fmt.Errorf("%w: broken parent link below %v", ErrCorrupted, x.value)
		}
		if x.color == Red && t.n(c).color == Red {
			return 0, 0, fmt.Errorf("%w: red node %v has red child", ErrCorrupted, x.value)
		}
	}
	lcount, lbh, err := t.checkChild(x.left)
	if err != nil {
		return 0, 0, err
	}
	rcount, rbh, err := t.checkChild(x.right)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%w: black-height mismatch below %v (%d != %d)",
			ErrCorrupted, x.value, lbh, rbh)
	}
	return lcount + rcount + 1, lbh, nil
}

// checkChild returns count and black-height of a child subtree as seen from
// its parent, i.e., including the child itself.
func (t *Tree[T]) checkChild(c alloc.Handle) (int, int, error) {
	if c == alloc.Nil {
		return 0, 1, nil
	}
	count, bh, err := t.checkNode(c)
	if err != nil {
		return 0, 0, err
	}
	if t.n(c).color == Black {
		bh++
	}
	return count, bh, nil
}
