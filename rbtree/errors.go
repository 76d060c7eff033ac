package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrCorrupted signals a violated structural invariant.
	ErrCorrupted = errors.New("rbtree: invariant violated")
)
