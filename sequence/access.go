package sequence

import (
	"fmt"

	"github.com/npillmayer/bstdict/cell"
)

// Get returns the cell at position at, which must be in [0, Len()).
// The cell stays owned by the sequence.
func (s *Sequence) Get(at int) (*cell.Cell, error) {
	if s == nil || at < 0 || at >= s.length {
		return nil, fmt.Errorf("%w: get at %d, length %d", ErrIndexOutOfRange, at, s.Len())
	}
	return s.cellAt(at), nil
}

// Search scans the sequence from the front and reports whether a payload
// satisfies pred(payload, query).
func (s *Sequence) Search(query []byte, pred cell.Predicate) bool {
	if s == nil || pred == nil {
		return false
	}
	for c := s.head; c != nil; c = c.Next() {
		if pred(c.Payload(), query) {
			return true
		}
	}
	return false
}

// cellAt walks to a valid position, starting from whichever end is closer.
func (s *Sequence) cellAt(at int) *cell.Cell {
	assert(at >= 0 && at < s.length, "cellAt called with invalid position")
	if at < s.length/2 {
		c := s.head
		for range at {
			c = c.Next()
		}
		return c
	}
	c := s.tail
	for i := s.length - 1; i > at; i-- {
		c = c.Prev()
	}
	return c
}
