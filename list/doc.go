/*
Package list implements a doubly linked list.

The list is a ring of nodes closed by a sentinel node. The sentinel is the
position End refers to; its successor is the first element and its
predecessor the last one. Nodes are drawn from an alloc.LinearAllocator
owned by the list, so iterators can detect when the element they refer to
has been erased.

Sorting relinks nodes in place and keeps iterators valid. Splicing and merging
move values from one list into another, as lists do not share nodes.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package list

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
