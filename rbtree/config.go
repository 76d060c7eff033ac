package rbtree

import (
	"cmp"
	"fmt"
)

// Config configures a red-black tree.
type Config[T any] struct {
	// Less is a strict weak order on T: Less(a, b) reports whether a sorts
	// before b.
	Less func(a, b T) bool
}

func (cfg Config[T]) normalized() Config[T] {
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Less == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}

// Ascending returns a configuration ordering values of an ordered type
// ascendingly.
func Ascending[T cmp.Ordered]() Config[T] {
	return Config[T]{Less: cmp.Less[T]}
}
