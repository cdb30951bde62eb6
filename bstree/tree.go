package bstree

import (
	"fmt"

	"github.com/npillmayer/bstdict/cell"
)

// Tree is an unbalanced binary search tree of cells.
type Tree struct {
	cfg  Config
	root *cell.Cell
	size int
}

// New creates an empty tree with validated configuration.
func New(cfg Config) (*Tree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective tree configuration. A nil tree
// reports the zero Config.
func (t *Tree) Config() Config {
	if t == nil {
		return Config{}
	}
	return t.cfg
}

// IsEmpty reports whether the tree has no cells.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of cells in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert copies data into a new cell and links it at its ordered position.
//
// If a payload comparing equal to data is already stored, Insert leaves the
// tree untouched and returns false. On error nothing is inserted.
// Empty payloads are rejected before the comparator sees them.
func (t *Tree) Insert(data []byte) (bool, error) {
	if len(data) < 1 {
		return false, fmt.Errorf("%w: %d bytes", cell.ErrInvalidSize, len(data))
	}
	if t == nil {
		return false, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		c, err := cell.NewLimited(data, t.cfg.MaxPayload)
		if err != nil {
			return false, err
		}
		t.root = c
		t.size = 1
		return true, nil
	}
	parent := t.root
	for {
		d := t.cfg.Compare(data, parent.Payload())
		if d == 0 {
			tracer().Debugf("bstree: dropping duplicate payload (%d bytes)", len(data))
			return false, nil
		}
		child := parent.Next()
		if d < 0 {
			child = parent.Prev()
		}
		if child == nil {
			c, err := cell.NewLimited(data, t.cfg.MaxPayload)
			if err != nil {
				return false, err
			}
			if d < 0 {
				parent.SetPrev(c)
			} else {
				parent.SetNext(c)
			}
			t.size++
			return true, nil
		}
		parent = child
	}
}

// Search returns the cell holding a payload comparing equal to data.
// The cell stays owned by the tree. An empty query matches nothing.
func (t *Tree) Search(data []byte) (*cell.Cell, bool) {
	if t == nil || len(data) < 1 {
		return nil, false
	}
	n := t.root
	for n != nil {
		d := t.cfg.Compare(n.Payload(), data)
		switch {
		case d < 0:
			n = n.Next()
		case d > 0:
			n = n.Prev()
		default:
			return n, true
		}
	}
	return nil, false
}

// Contains reports whether a payload comparing equal to data is stored.
func (t *Tree) Contains(data []byte) bool {
	_, found := t.Search(data)
	return found
}

// Height returns the number of cells on the longest root-to-leaf path,
// where 0 means empty.
func (t *Tree) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	type level struct {
		node  *cell.Cell
		depth int
	}
	height := 0
	stack := []level{{t.root, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, top.depth)
		if l := top.node.Prev(); l != nil {
			stack = append(stack, level{l, top.depth + 1})
		}
		if r := top.node.Next(); r != nil {
			stack = append(stack, level{r, top.depth + 1})
		}
	}
	return height
}

// Destroy frees every cell in post-order (left subtree, right subtree, node).
// The tree is empty afterwards and may be reused.
func (t *Tree) Destroy() {
	if t == nil || t.root == nil {
		return
	}
	n := 0
	t.postOrder(func(c *cell.Cell) {
		c.Destroy()
		n++
	})
	assert(n == t.size, "post-order teardown missed cells")
	t.root = nil
	t.size = 0
	tracer().Debugf("bstree: destroyed %d cells", n)
}

// postOrder calls fn for every cell, children before their parent. fn may
// destroy the cell it is handed.
func (t *Tree) postOrder(fn func(*cell.Cell)) {
	var stack []*cell.Cell
	var last *cell.Cell
	n := t.root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.Prev()
			continue
		}
		top := stack[len(stack)-1]
		if r := top.Next(); r != nil && r != last {
			n = r
			continue
		}
		stack = stack[:len(stack)-1]
		fn(top)
		last = top
	}
}
