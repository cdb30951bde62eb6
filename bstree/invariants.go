package bstree

import (
	"fmt"

	"github.com/npillmayer/bstdict/cell"
)

// Check validates structural tree invariants: every payload in a left subtree
// orders strictly before its ancestor, every payload in a right subtree
// strictly after it, and the cell count matches Len().
//
// An in-order walk yielding strictly increasing payloads is equivalent to the
// search-tree property, so Check compares neighbours of that walk.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree with size %d", ErrBrokenInvariant, t.size)
		}
		return nil
	}
	var err error
	var prev []byte
	count := 0
	t.inOrder(func(c *cell.Cell) bool {
		if c.Payload() == nil {
			err = fmt.Errorf("%w: cell %d has no payload", ErrBrokenInvariant, count)
			return false
		}
		if count > 0 && t.cfg.Compare(prev, c.Payload()) >= 0 {
			err = fmt.Errorf("%w: payload %d does not order after its in-order predecessor",
				ErrBrokenInvariant, count)
			return false
		}
		prev = c.Payload()
		count++
		return true
	})
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d, but %d cells reachable", ErrBrokenInvariant, t.size, count)
	}
	return nil
}
