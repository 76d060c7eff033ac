/*
Package containers offers generic container types built from scratch: a
growable array, a fixed-capacity array, a doubly linked list, stack and queue
adapters, and ordered maps, sets and multisets backed by a red-black tree.

Containers

The ordered containers are thin projections over package rbtree, which is the
heart of this module. A red-black tree keeps itself balanced by coloring
every node either red or black and by restoring a handful of coloring rules
after every insertion and deletion:

1. The root is black.

2. A red node never has a red child.

3. Every path from a node to any of its descendant leaves contains the same
number of black nodes.

From these rules follows that the longest path from the root to a leaf is at
most twice as long as the shortest one, which bounds search, insertion and
deletion to O(log n).

_________________________________________________________________________

Package layout:

	alloc     slab allocator with stable handles, used for tree and list nodes
	vector    dynamic array, fixed array, random-access iterator
	rbtree    red-black tree and its bidirectional iterator
	ordered   Map, Set and Multiset
	list      doubly linked list
	stack     LIFO adapter over vector
	queue     FIFO adapter over vector

None of the containers is safe for concurrent use. Clients have to serialize
access to a container instance themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package containers

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
