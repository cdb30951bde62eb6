package sequence

import (
	"fmt"

	"github.com/npillmayer/bstdict/cell"
)

// Config configures a sequence.
type Config struct {
	// MaxPayload limits the size of a single payload. 0 selects cell.DefaultMaxSize.
	MaxPayload int
}

func (cfg Config) normalized() Config {
	if cfg.MaxPayload == 0 {
		cfg.MaxPayload = cell.DefaultMaxSize
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.MaxPayload < 0 {
		return fmt.Errorf("%w: negative payload limit %d", ErrInvalidConfig, cfg.MaxPayload)
	}
	return nil
}

// Sequence is a doubly-linked list of cells.
//
// The zero value is not usable; create sequences with New or NewWithConfig.
type Sequence struct {
	cfg    Config
	head   *cell.Cell
	tail   *cell.Cell
	length int
}

// New creates an empty sequence with default configuration.
func New() *Sequence {
	return &Sequence{cfg: Config{}.normalized()}
}

// NewWithConfig creates an empty sequence with a validated configuration.
func NewWithConfig(cfg Config) (*Sequence, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Sequence{cfg: cfg.normalized()}, nil
}

// Len returns the number of cells in the sequence.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// IsEmpty reports whether the sequence holds no cells.
func (s *Sequence) IsEmpty() bool {
	return s.Len() == 0
}

// Insert copies data into a new cell at position at, which must be in [0, Len()].
// Position 0 prepends, position Len() appends. On error the sequence is left
// unchanged.
func (s *Sequence) Insert(at int, data []byte) error {
	if s == nil {
		return fmt.Errorf("%w: nil sequence", ErrInvalidConfig)
	}
	if at < 0 || at > s.length {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfRange, at, s.length)
	}
	c, err := cell.NewLimited(data, s.cfg.MaxPayload)
	if err != nil {
		return err
	}
	switch {
	case s.length == 0:
		s.head, s.tail = c, c
	case at == 0:
		c.SetNext(s.head)
		s.head.SetPrev(c)
		s.head = c
	case at == s.length:
		c.SetPrev(s.tail)
		s.tail.SetNext(c)
		s.tail = c
	default:
		succ := s.cellAt(at)
		pred := succ.Prev()
		assert(pred != nil, "inner position without predecessor")
		c.SetPrev(pred)
		c.SetNext(succ)
		pred.SetNext(c)
		succ.SetPrev(c)
	}
	s.length++
	tracer().Debugf("sequence: inserted %s at %d, length now %d", c, at, s.length)
	return nil
}

// Append copies data into a new cell at the end of the sequence.
func (s *Sequence) Append(data []byte) error {
	return s.Insert(s.Len(), data)
}

// Remove unlinks and destroys the cell at position at, which must be in
// [0, Len()). On error the sequence is left unchanged.
func (s *Sequence) Remove(at int) error {
	if s == nil || at < 0 || at >= s.length {
		return fmt.Errorf("%w: remove at %d, length %d", ErrIndexOutOfRange, at, s.Len())
	}
	c := s.cellAt(at)
	pred, succ := c.Prev(), c.Next()
	if pred == nil {
		s.head = succ
	} else {
		pred.SetNext(succ)
	}
	if succ == nil {
		s.tail = pred
	} else {
		succ.SetPrev(pred)
	}
	c.Destroy()
	s.length--
	tracer().Debugf("sequence: removed cell at %d, length now %d", at, s.length)
	return nil
}

// Destroy removes all cells from the front until the sequence is empty.
// The sequence may be reused afterwards.
func (s *Sequence) Destroy() {
	if s == nil {
		return
	}
	n := s.length
	for s.length > 0 {
		err := s.Remove(0)
		assert(err == nil, "removing head of non-empty sequence failed")
	}
	tracer().Debugf("sequence: destroyed %d cells", n)
}
