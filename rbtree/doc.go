/*
Package rbtree implements a red-black tree holding arbitrary values under a
client-supplied strict weak order, together with a bidirectional iterator over
the in-order sequence of values.

The tree is the backing store of the ordered containers in package ordered,
but may be used on its own:

	t := rbtree.NewOrdered[int]()
	t.Insert(5)
	t.InsertAll(5) // duplicates are welcome with InsertAll
	for it := t.Start(); it != t.End(); it = it.Next() {
	    fmt.Println(it.Value())
	}

Nodes are kept in an arena (see package alloc) and link to each other by
handles. The tree owns its nodes exclusively; copying a tree with Clone copies
every node.

Two values a and b are considered equal if neither Less(a, b) nor Less(b, a)
holds. Insert refuses to store a value equal to one already present, InsertAll
accepts it and places it behind all equal values, preserving insertion order
among equals.

Edge() returns an iterator to the maximum value, not a past-the-end position.
The past-the-end position is End(), which is also the "not found" result of
searches. Stepping Prev() from End() yields Edge().

Red-black rules maintained by all mutating operations:

  - the root is black,
  - a red node has no red children,
  - every path from a node to a descendant leaf holds the same number of black
    nodes.

Absent children count as black leaves.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
