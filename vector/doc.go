/*
Package vector implements a growable array (Vector), a fixed-capacity array
(Array) and a random-access iterator over both.

A Vector owns a contiguous buffer. When the buffer is full, capacity doubles;
when popping leaves the vector less than half full, capacity halves. This
keeps push and pop at the back amortized O(1).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package vector

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
