package bstree

import (
	"iter"

	"github.com/npillmayer/bstdict/cell"
)

// InOrder walks payloads in comparator order.
//
// The tree must not be modified during iteration.
func (t *Tree) InOrder() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if t == nil {
			return
		}
		t.inOrder(func(c *cell.Cell) bool {
			return yield(c.Payload())
		})
	}
}

// ForEachCell walks cells in comparator order together with their depth,
// where the root has depth 0. Iteration stops early if fn returns false.
func (t *Tree) ForEachCell(fn func(c *cell.Cell, depth int) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	type frame struct {
		node  *cell.Cell
		depth int
	}
	var stack []frame
	n, depth := t.root, 0
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, frame{n, depth})
			n, depth = n.Prev(), depth+1
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(top.node, top.depth) {
			return
		}
		n, depth = top.node.Next(), top.depth+1
	}
}

func (t *Tree) inOrder(fn func(*cell.Cell) bool) {
	t.ForEachCell(func(c *cell.Cell, _ int) bool {
		return fn(c)
	})
}
