package core

import "errors"

// Sentinel errors, wrapped with detail at the call site and matched with errors.Is
var (
	// ErrOutOfBounds reports a write target outside grid extents
	// Raised before any mutation
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvalidConfiguration reports non-positive dimensions, negative padding or an unusable object
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
