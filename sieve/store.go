package sieve

// Store records primality candidacy for every index in [0, Limit()].
type Store interface {
	// Limit is the largest index the store covers.
	Limit() uint64
	// Test reports whether index i is still a prime candidate.
	// Behaviour is undefined for i > Limit().
	Test(i uint64) bool
	// SizeBytes is the memory footprint of the backing array.
	SizeBytes() uint64
}
