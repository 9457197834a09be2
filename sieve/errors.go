package sieve

import "errors"

var (
	// ErrAllocation is returned when a store cannot be allocated: its size
	// overflows, it exceeds the memory ceiling, or the runtime refuses it.
	ErrAllocation = errors.New("sieve: store allocation failed")

	// ErrInvalidConfiguration is returned before any work starts when the
	// engine kind or thread count is not acceptable.
	ErrInvalidConfiguration = errors.New("sieve: invalid configuration")
)
