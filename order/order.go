package order

import (
	"bytes"

	"github.com/npillmayer/bstdict/cell"
	"golang.org/x/exp/constraints"
)

// Compare is a three-way comparison for ordered types.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Ordered creates a payload comparator which decodes both payloads and
// compares the decoded values.
func Ordered[T constraints.Ordered](decode func([]byte) T) cell.Comparator {
	return func(a, b []byte) int {
		return Compare(decode(a), decode(b))
	}
}

// Int32 compares payloads holding 4-byte little-endian signed integers.
func Int32(a, b []byte) int {
	return Compare(Int32Of(a), Int32Of(b))
}

// Int64 compares payloads holding 8-byte little-endian signed integers.
func Int64(a, b []byte) int {
	return Compare(Int64Of(a), Int64Of(b))
}

// Uint64 compares payloads holding 8-byte little-endian unsigned integers.
func Uint64(a, b []byte) int {
	return Compare(Uint64Of(a), Uint64Of(b))
}

// Bytes compares payloads lexicographically.
func Bytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// String compares payloads holding UTF-8 text.
// Text is ordered bytewise, which for valid UTF-8 equals code point order.
func String(a, b []byte) int {
	return Compare(string(a), string(b))
}

// Equal derives a sequence search predicate from a comparator.
func Equal(cmp cell.Comparator) cell.Predicate {
	return func(payload, query []byte) bool {
		return cmp(payload, query) == 0
	}
}
