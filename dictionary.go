package bstdict

import (
	"fmt"
	"io"
	"iter"

	"github.com/npillmayer/bstdict/bstree"
	"github.com/npillmayer/bstdict/cell"
	"github.com/npillmayer/bstdict/sequence"
)

// Config configures a dictionary.
type Config struct {
	// CompareKey orders keys. It is required and immutable for the lifetime
	// of the dictionary.
	CompareKey cell.Comparator
	// MaxPayload limits the size of a stored entry (key, value and a few
	// bytes of framing). 0 selects cell.DefaultMaxSize.
	MaxPayload int
}

func (cfg Config) validate() error {
	if cfg.CompareKey == nil {
		return fmt.Errorf("%w: key comparator is required", ErrInvalidConfig)
	}
	if cfg.MaxPayload < 0 {
		return fmt.Errorf("%w: negative payload limit %d", ErrInvalidConfig, cfg.MaxPayload)
	}
	return nil
}

// Dictionary is an ordered key/value store.
//
// Entries live in a binary search tree ordered by key. Keys accepted by the
// tree are additionally recorded in insertion order.
type Dictionary struct {
	tree *bstree.Tree
	keys *sequence.Sequence
}

// New creates an empty dictionary ordering keys by compareKey.
func New(compareKey cell.Comparator) (*Dictionary, error) {
	return NewWithConfig(Config{CompareKey: compareKey})
}

// NewWithConfig creates an empty dictionary with a validated configuration.
func NewWithConfig(cfg Config) (*Dictionary, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tree, err := bstree.New(bstree.Config{
		Compare:    entryComparator(cfg.CompareKey),
		MaxPayload: cfg.MaxPayload,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	keys, err := sequence.NewWithConfig(sequence.Config{MaxPayload: cfg.MaxPayload})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &Dictionary{tree: tree, keys: keys}, nil
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return d.tree.Len()
}

// Insert copies key and value into the dictionary. Both must hold at least
// one byte.
//
// If key is already present the stored value is kept, value is discarded and
// Insert returns false. On error the dictionary is left unchanged.
func (d *Dictionary) Insert(key, value []byte) (bool, error) {
	entry, err := MakeEntry(key, value)
	if err != nil {
		return false, err
	}
	inserted, err := d.tree.Insert(entry)
	if err != nil {
		return false, err
	}
	if !inserted {
		tracer().Debugf("dictionary: key of %d bytes already present, value dropped", len(key))
		return false, nil
	}
	// key is shorter than entry, so the key record cannot exceed the limit
	err = d.keys.Append(key)
	if err != nil {
		panic(fmt.Sprintf("dictionary: cannot record key after insert: %v", err))
	}
	return true, nil
}

// Search returns the value stored for key, or ErrNotFound.
//
// The returned slice refers to the stored entry. Clients must not modify it,
// and it is invalid after the dictionary is destroyed.
func (d *Dictionary) Search(key []byte) ([]byte, error) {
	if len(key) < 1 {
		return nil, fmt.Errorf("%w: key of %d bytes", cell.ErrInvalidSize, len(key))
	}
	c, found := d.tree.Search(encodeEntry(key, nil))
	if !found {
		return nil, ErrNotFound
	}
	return Entry(c.Payload()).Value(), nil
}

// Contains reports whether key is present.
func (d *Dictionary) Contains(key []byte) bool {
	_, err := d.Search(key)
	return err == nil
}

// Keys walks the keys in insertion order.
//
// The dictionary must not be modified during iteration.
func (d *Dictionary) Keys() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if d == nil {
			return
		}
		for _, k := range d.keys.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// All walks key/value pairs in key order.
//
// The dictionary must not be modified during iteration.
func (d *Dictionary) All() iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		if d == nil {
			return
		}
		for p := range d.tree.InOrder() {
			e := Entry(p)
			if !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}

// Height returns the height of the underlying search tree.
func (d *Dictionary) Height() int {
	if d == nil {
		return 0
	}
	return d.tree.Height()
}

// Destroy releases the key record and every entry. The dictionary is empty
// afterwards; values returned by Search before must no longer be used.
func (d *Dictionary) Destroy() {
	if d == nil {
		return
	}
	n := d.tree.Len()
	d.keys.Destroy()
	d.tree.Destroy()
	tracer().Debugf("dictionary: destroyed %d entries", n)
}

// Check validates the dictionary: the tree and the key record are
// structurally sound and agree with each other.
func (d *Dictionary) Check() error {
	if d == nil {
		return fmt.Errorf("%w: nil dictionary", ErrInvalidConfig)
	}
	if err := d.tree.Check(); err != nil {
		return err
	}
	if err := d.keys.Check(); err != nil {
		return err
	}
	if d.keys.Len() != d.tree.Len() {
		return fmt.Errorf("%w: %d entries, but %d recorded keys", ErrInvalidConfig,
			d.tree.Len(), d.keys.Len())
	}
	for p := range d.tree.InOrder() {
		if _, _, err := Entry(p).Split(); err != nil {
			return err
		}
	}
	for i, k := range d.keys.All() {
		if !d.tree.Contains(encodeEntry(k, nil)) {
			return fmt.Errorf("%w: recorded key #%d has no entry", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Dot writes the structure of the underlying search tree in Graphviz DOT
// format. label renders a key/value pair; if it is nil, keys are printed as
// quoted Go strings.
func (d *Dictionary) Dot(w io.Writer, label func(key, value []byte) string) error {
	if label == nil {
		label = func(k, _ []byte) string { return fmt.Sprintf("%q", k) }
	}
	return bstree.Tree2Dot(d.tree, w, func(p []byte) string {
		e := Entry(p)
		return label(e.Key(), e.Value())
	})
}
