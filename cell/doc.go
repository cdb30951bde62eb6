/*
Package cell provides the storage unit shared by all containers of bstdict.

A cell owns a private copy of an opaque payload and carries two links to
sibling cells. What the links mean is up to the container holding the cell:
a sequence uses them as previous/next, a search tree uses prev as the left
(lesser) child and next as the right (greater) child.

Cells never alias the caller's buffer. The payload is copied when the cell
is constructed and stays owned by the cell until Destroy is called.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package cell

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstdict'
func tracer() tracing.Trace {
	return tracing.Select("bstdict")
}
