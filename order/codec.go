package order

import "encoding/binary"

// Fixed payload widths of the integer codecs.
const (
	Int32Size  = 4
	Int64Size  = 8
	Uint64Size = 8
)

// PutInt32 encodes v as a 4-byte little-endian payload.
func PutInt32(v int32) []byte {
	b := make([]byte, Int32Size)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

// Int32Of decodes a payload created by PutInt32.
// Short payloads are zero-extended.
func Int32Of(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(widen(b, Int32Size)))
}

// PutInt64 encodes v as an 8-byte little-endian payload.
func PutInt64(v int64) []byte {
	b := make([]byte, Int64Size)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}

// Int64Of decodes a payload created by PutInt64.
func Int64Of(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(widen(b, Int64Size)))
}

// PutUint64 encodes v as an 8-byte little-endian payload.
func PutUint64(v uint64) []byte {
	b := make([]byte, Uint64Size)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// Uint64Of decodes a payload created by PutUint64.
func Uint64Of(b []byte) uint64 {
	return binary.LittleEndian.Uint64(widen(b, Uint64Size))
}

func widen(b []byte, n int) []byte {
	if len(b) >= n {
		return b[:n]
	}
	w := make([]byte, n)
	copy(w, b)
	return w
}
