/*
Package bstdict offers an ordered key/value dictionary over opaque byte payloads.

Dictionaries

A Dictionary stores entries in an unbalanced binary search tree, ordered by a
key comparator supplied by the client. Keys and values are plain byte slices
of at least one byte. Both are copied into the dictionary on insert; the
caller's buffers are never aliased.

	dict, _ := bstdict.New(order.Int32)
	dict.Insert(order.PutInt32(5), order.PutInt32(500))
	v, err := dict.Search(order.PutInt32(5))   // v holds 500

Inserting a key which is already present leaves the stored value untouched.
Looking up a missing key returns ErrNotFound. Besides the tree, a dictionary
records its keys in insertion order (see Keys).

Building blocks

The dictionary is composed from three lower layers, each in its own package:

	cell      – a storage unit owning one payload copy plus two links
	sequence  – a doubly-linked chain of cells with positional access
	bstree    – an unbalanced binary search tree of cells

Package order provides ready-made comparators and fixed-width integer
encodings.

Neither the dictionary nor its building blocks are safe for concurrent
mutation. The tree is not rebalanced; sorted input yields a linear chain.

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
package bstdict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstdict'
func tracer() tracing.Trace {
	return tracing.Select("bstdict")
}

// DictError is an error type for the bstdict module
type DictError string

func (e DictError) Error() string {
	return string(e)
}

// ErrNotFound is flagged whenever a key is not present in a dictionary.
// It is a regular outcome of a lookup, not a failure of the dictionary.
const ErrNotFound = DictError("key not found")

// ErrInvalidConfig is flagged for dictionaries created without a key comparator
// or with an invalid payload limit.
const ErrInvalidConfig = DictError("invalid dictionary configuration")

// ErrMalformedEntry is flagged when a payload cannot be read as an Entry.
const ErrMalformedEntry = DictError("malformed dictionary entry")
