/*
Package sequence implements a positionally ordered, doubly-linked chain of cells.

Every payload is copied into a cell on insert and released when the cell is
removed. Positions are zero-based: Insert accepts positions in [0, Len()],
Remove and Get accept positions in [0, Len()).

A Sequence is not safe for concurrent mutation. Read-only calls (Get, Search,
All) may run concurrently as long as no goroutine mutates the sequence.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sequence

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
