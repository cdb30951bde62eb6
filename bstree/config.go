package bstree

import (
	"fmt"

	"github.com/npillmayer/bstdict/cell"
)

// Config configures a binary search tree.
type Config struct {
	// Compare orders payloads. It is required and immutable for the lifetime
	// of the tree.
	Compare cell.Comparator
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
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.MaxPayload < 0 {
		return fmt.Errorf("%w: negative payload limit %d", ErrInvalidConfig, cfg.MaxPayload)
	}
	return nil
}
