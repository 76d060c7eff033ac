/*
Package ordered implements ordered associative containers on top of package
rbtree: Map for unique keys with mapped values, Set for unique keys and
Multiset for keys which may occur more than once.

All three containers are thin projections over a red-black tree. A Map stores
its entries as containers.Pair values and orders them by key only, ignoring
the mapped value. Iterators are rbtree iterators; Begin refers to the smallest
entry, Last to the largest one and End to the null position past Last.

Erasing through an invalid iterator does not go unnoticed: Erase returns a
*containers.EraseError, which wraps the cause.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ordered

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

// InsertResult is the outcome of a single insertion in InsertMany.
type InsertResult[I any] struct {
	Iter     I    // position of the inserted or of the blocking entry
	Inserted bool // false if an equal entry was already present
}
