/*
Package alloc provides a slab allocator for container nodes.

Nodes of linked containers (trees, lists) are not addressed by Go pointers but
by small integer handles into a LinearAllocator. Ownership between nodes is
thereby reduced to plain values, and a container can be deep-copied, cleared
or dropped without chasing pointers.

Objects live in fixed-size slabs which are never moved, therefore a pointer
obtained by At stays valid until the object is deallocated. Every slot carries
a generation counter, incremented whenever the slot is released, so holders of
a handle can detect that the object they refer to has gone.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package alloc

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
