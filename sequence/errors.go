package sequence

import "errors"

var (
	// ErrIndexOutOfRange signals an invalid positional index.
	ErrIndexOutOfRange = errors.New("sequence: index out of range")
	// ErrInvalidConfig signals an invalid sequence configuration or a broken
	// structural invariant.
	ErrInvalidConfig = errors.New("sequence: invalid configuration")
)
