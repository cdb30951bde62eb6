package bstree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bstree: invalid configuration")
	// ErrBrokenInvariant signals a tree whose structure violates the search-tree order.
	ErrBrokenInvariant = errors.New("bstree: broken invariant")
)
