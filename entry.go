package bstdict

import (
	"encoding/binary"
	"fmt"

	"github.com/npillmayer/bstdict/cell"
)

// Entry is the payload a dictionary stores for a key/value pair.
//
// Its layout is the key length as unsigned varint, followed by the key bytes,
// followed by the value bytes:
//
//	uvarint(len(key)) ‖ key ‖ value
//
// Key and Value return slices into the entry; they must not be modified.
type Entry []byte

// MakeEntry copies key and value into a new entry. Both must hold at least
// one byte.
func MakeEntry(key, value []byte) (Entry, error) {
	if len(key) < 1 {
		return nil, fmt.Errorf("%w: key of %d bytes", cell.ErrInvalidSize, len(key))
	}
	if len(value) < 1 {
		return nil, fmt.Errorf("%w: value of %d bytes", cell.ErrInvalidSize, len(value))
	}
	return encodeEntry(key, value), nil
}

// encodeEntry does not validate sizes; search probes carry no value.
func encodeEntry(key, value []byte) Entry {
	e := make([]byte, 0, binary.MaxVarintLen64+len(key)+len(value))
	e = binary.AppendUvarint(e, uint64(len(key)))
	e = append(e, key...)
	e = append(e, value...)
	return e
}

// Split returns the key and value parts of the entry.
func (e Entry) Split() (key, value []byte, err error) {
	n, w := binary.Uvarint(e)
	if w <= 0 || n > uint64(len(e)-w) {
		return nil, nil, fmt.Errorf("%w: bad key length prefix", ErrMalformedEntry)
	}
	end := w + int(n)
	return e[w:end], e[end:], nil
}

// Key returns the key part of the entry, or nil if the entry is malformed.
func (e Entry) Key() []byte {
	k, _, err := e.Split()
	if err != nil {
		return nil
	}
	return k
}

// Value returns the value part of the entry, or nil if the entry is malformed.
func (e Entry) Value() []byte {
	_, v, err := e.Split()
	if err != nil {
		return nil
	}
	return v
}

// entryComparator orders entries by key only. Values never take part in
// the comparison.
func entryComparator(compareKey cell.Comparator) cell.Comparator {
	return func(a, b []byte) int {
		return compareKey(Entry(a).Key(), Entry(b).Key())
	}
}
