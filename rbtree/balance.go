package rbtree

import (
	"github.com/npillmayer/containers/alloc"
)

// relink puts child into old's place below old's parent, making child the
// root if old was the root. child may be Nil.
func (t *Tree[T]) relink(old, child alloc.Handle) {
	p := t.n(old).parent
	if child != alloc.Nil {
		t.n(child).parent = p
	}
	switch {
	case p == alloc.Nil:
		t.root = child
	case t.n(p).left == old:
		t.n(p).left = child
	default:
		t.n(p).right = child
	}
}

// rotateLeft lifts the right child of h above h.
//
//	    h                r
//	   / \              / \
//	  a   r     =>     h   c
//	     / \          / \
//	    b   c        a   b
func (t *Tree[T]) rotateLeft(h alloc.Handle) {
	x := t.n(h)
	r := x.right
	rn := t.n(r)
	x.right = rn.left
	if rn.left != alloc.Nil {
		t.n(rn.left).parent = h
	}
	t.relink(h, r)
	rn.left = h
	x.parent = r
}

// rotateRight lifts the left child of h above h. Mirror of rotateLeft.
func (t *Tree[T]) rotateRight(h alloc.Handle) {
	x := t.n(h)
	l := x.left
	ln := t.n(l)
	x.left = ln.right
	if ln.right != alloc.Nil {
		t.n(ln.right).parent = h
	}
	t.relink(h, l)
	ln.right = h
	x.parent = l
}

// fixInsert restores the red-black rules after h has been attached as a red
// leaf.
func (t *Tree[T]) fixInsert(h alloc.Handle) {
	for {
		p := t.n(h).parent
		if p == alloc.Nil { // h is the root
			t.n(h).color = Black
			return
		}
		if t.n(p).color == Black { // red below black is fine
			return
		}
		// p is red, so it is not the root and g exists
		g := t.n(p).parent
		u := t.sibling(p, g)
		if t.colorOf(u) == Red {
			t.n(p).color = Black
			t.n(u).color = Black
			t.n(g).color = Red
			h = g
			continue
		}
		// inner grandchild: rotate it to the outside first
		if h == t.n(p).right && p == t.n(g).left {
			t.rotateLeft(p)
			h, p = p, h
		} else if h == t.n(p).left && p == t.n(g).right {
			t.rotateRight(p)
			h, p = p, h
		}
		// outer grandchild
		t.n(p).color = Black
		t.n(g).color = Red
		if h == t.n(p).left {
			t.rotateRight(g)
		} else {
			t.rotateLeft(g)
		}
		return
	}
}

// fixDelete restores the black-height after a black node has been unlinked.
// c is the node which took its place (possibly Nil) and parent is c's parent.
// The subtree at c is short of one black node.
func (t *Tree[T]) fixDelete(c, parent alloc.Handle) {
	for c != t.root && t.colorOf(c) == Black {
		p := t.n(parent)
		if c == p.left {
			b := p.right
			if t.colorOf(b) == Red {
				t.n(b).color = Black
				p.color = Red
				t.rotateLeft(parent)
				b = p.right
			}
			bn := t.n(b)
			if t.colorOf(bn.left) == Black && t.colorOf(bn.right) == Black {
				bn.color = Red
				if p.color == Red {
					p.color = Black
					return
				}
				c, parent = parent, p.parent
				continue
			}
			if t.colorOf(bn.right) == Black { // near child red, far child black
				t.n(bn.left).color = Black
				bn.color = Red
				t.rotateRight(b)
				b = p.right
				bn = t.n(b)
			}
			bn.color = p.color
			p.color = Black
			t.n(bn.right).color = Black
			t.rotateLeft(parent)
			return
		}
		b := p.left
		if t.colorOf(b) == Red {
			t.n(b).color = Black
			p.color = Red
			t.rotateRight(parent)
			b = p.left
		}
		bn := t.n(b)
		if t.colorOf(bn.left) == Black && t.colorOf(bn.right) == Black {
			bn.color = Red
			if p.color == Red {
				p.color = Black
				return
			}
			c, parent = parent, p.parent
			continue
		}
		if t.colorOf(bn.left) == Black {
			t.n(bn.right).color = Black
			bn.color = Red
			t.rotateLeft(b)
			b = p.left
			bn = t.n(b)
		}
		bn.color = p.color
		p.color = Black
		t.n(bn.left).color = Black
		t.rotateRight(parent)
		return
	}
	if c != alloc.Nil {
		t.n(c).color = Black
	}
}
