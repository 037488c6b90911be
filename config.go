package rbtree

import (
	"cmp"
	"fmt"
)

// Comparator defines a total order over keys. It returns a negative value
// if a < b, zero if a == b and a positive value if a > b.
type Comparator[K any] func(a, b K) int

// Config configures a red-black tree.
type Config[K any] struct {
	// Compare orders keys. Required.
	Compare Comparator[K]
	// RecordEvents switches on event recording right from the start.
	RecordEvents bool
	// Sink, if set, receives every structural event as it happens.
	Sink EventSink[K]
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}

// OrderedConfig returns a configuration for key types with a natural order.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}
