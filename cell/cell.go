package cell

import "fmt"

// DefaultMaxSize is the payload limit used by New.
const DefaultMaxSize = 1 << 30

// Comparator is a three-way order over two payloads. It returns a negative
// value if a orders before b, a positive value if a orders after b and 0 if
// both are equal.
//
// A comparator must be a strict total order and must not change its behaviour
// during the lifetime of a container it is bound to.
type Comparator func(a, b []byte) int

// Predicate matches a stored payload against a query.
type Predicate func(payload, query []byte) bool

// Cell holds one owned payload and two links.
type Cell struct {
	payload []byte
	next    *Cell
	prev    *Cell
}

// New copies data into a fresh cell, using DefaultMaxSize as the payload limit.
func New(data []byte) (*Cell, error) {
	return NewLimited(data, DefaultMaxSize)
}

// NewLimited copies data into a fresh cell. Payloads must have a length between
// 1 and limit. A limit < 1 selects DefaultMaxSize.
//
// On error no cell is returned and no storage is held.
func NewLimited(data []byte, limit int) (*Cell, error) {
	if limit < 1 {
		limit = DefaultMaxSize
	}
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSize, len(data))
	}
	if len(data) > limit {
		tracer().Errorf("cell: refusing payload of %d bytes (limit %d)", len(data), limit)
		return nil, fmt.Errorf("%w: %d bytes exceed limit of %d", ErrAllocationFailure, len(data), limit)
	}
	payload := make([]byte, len(data))
	copy(payload, data)
	return &Cell{payload: payload}, nil
}

// Payload returns the bytes owned by the cell. Clients must not modify them.
func (c *Cell) Payload() []byte {
	if c == nil {
		return nil
	}
	return c.payload
}

// Len returns the payload size in bytes.
func (c *Cell) Len() int {
	if c == nil {
		return 0
	}
	return len(c.payload)
}

// Next returns the cell linked as successor (or right child).
func (c *Cell) Next() *Cell {
	if c == nil {
		return nil
	}
	return c.next
}

// Prev returns the cell linked as predecessor (or left child).
func (c *Cell) Prev() *Cell {
	if c == nil {
		return nil
	}
	return c.prev
}

// SetNext links n as successor (or right child) of c.
func (c *Cell) SetNext(n *Cell) {
	c.next = n
}

// SetPrev links p as predecessor (or left child) of c.
func (c *Cell) SetPrev(p *Cell) {
	c.prev = p
}

// Destroy releases the payload and both links. A cell must be destroyed at
// most once and must not be reachable from a container afterwards.
func (c *Cell) Destroy() {
	if c == nil {
		return
	}
	c.payload = nil
	c.next = nil
	c.prev = nil
}

func (c *Cell) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("cell[%d]", len(c.payload))
}
