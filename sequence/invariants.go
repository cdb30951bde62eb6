package sequence

import "fmt"

// Check validates structural sequence invariants: the length matches the
// number of reachable cells, head and tail agree with the links, and every
// next link is mirrored by a prev link.
func (s *Sequence) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil sequence", ErrInvalidConfig)
	}
	if (s.head == nil) != (s.length == 0) {
		return fmt.Errorf("%w: head/length mismatch (length=%d)", ErrInvalidConfig, s.length)
	}
	if (s.tail == nil) != (s.head == nil) {
		return fmt.Errorf("%w: head and tail disagree on emptiness", ErrInvalidConfig)
	}
	if s.head != nil && s.head.Prev() != nil {
		return fmt.Errorf("%w: head has a predecessor", ErrInvalidConfig)
	}
	count := 0
	var last = s.head
	for c := s.head; c != nil; c = c.Next() {
		count++
		if count > s.length {
			return fmt.Errorf("%w: more cells reachable than length %d", ErrInvalidConfig, s.length)
		}
		if c.Payload() == nil {
			return fmt.Errorf("%w: cell %d has no payload", ErrInvalidConfig, count-1)
		}
		if next := c.Next(); next != nil && next.Prev() != c {
			return fmt.Errorf("%w: broken prev link after cell %d", ErrInvalidConfig, count-1)
		}
		last = c
	}
	if count != s.length {
		return fmt.Errorf("%w: length %d, but %d cells reachable", ErrInvalidConfig, s.length, count)
	}
	if last != s.tail {
		return fmt.Errorf("%w: tail is not the last reachable cell", ErrInvalidConfig)
	}
	return nil
}
