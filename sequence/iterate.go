package sequence

import "iter"

// All walks payloads front-to-back together with their positions.
//
// The sequence must not be modified during iteration.
func (s *Sequence) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		if s == nil {
			return
		}
		i := 0
		for c := s.head; c != nil; c = c.Next() {
			if !yield(i, c.Payload()) {
				return
			}
			i++
		}
	}
}
