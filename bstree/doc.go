/*
Package bstree provides an unbalanced binary search tree over cells.

The tree orders opaque payloads by a comparator bound at construction time.
A cell's prev link is its left child (payloads ordering before it), its next
link is its right child (payloads ordering after it). Inserting a payload
which compares equal to a stored one is a no-op: the stored payload wins.

The package intentionally does not rebalance. Inserting sorted input
degenerates the tree into a chain with linear search cost. All walks
(insert, search, in-order iteration, teardown) are iterative, so tree height
is bounded by memory, not by the goroutine stack.

A Tree is not safe for concurrent mutation. Read-only calls may run
concurrently as long as no goroutine mutates the tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bstree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstdict'
func tracer() tracing.Trace {
	return tracing.Select("bstdict")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
