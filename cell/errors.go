package cell

import "errors"

var (
	// ErrInvalidSize signals a payload of less than one byte.
	ErrInvalidSize = errors.New("cell: invalid payload size")
	// ErrAllocationFailure signals that storage for a payload could not be obtained.
	ErrAllocationFailure = errors.New("cell: cannot allocate payload storage")
)
