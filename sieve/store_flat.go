package sieve

import "fmt"

// FlatStore keeps one byte per index: 1 for a candidate, 0 for eliminated.
//
// Each index owns its own addressable cell, so goroutines clearing
// different indices never share a read-modify-write unit. Clears only ever
// store 0, which makes them idempotent and order-independent: any number of
// workers may clear concurrently without a lock as long as nobody sets a
// cell back to 1 while elimination is running.
type FlatStore struct {
	cells []byte
	n     uint64
}

// NewFlatStore allocates n+1 zeroed cells.
func NewFlatStore(n uint64) (*FlatStore, error) {
	return newFlatStore(n, 0)
}

func newFlatStore(n, limit uint64) (*FlatStore, error) {
	count, err := cellCount(n)
	if err != nil {
		return nil, fmt.Errorf("flat store for n=%d: %w", n, err)
	}
	if err := checkFootprint(uint64(count), limit); err != nil {
		return nil, fmt.Errorf("flat store for n=%d: %w", n, err)
	}
	cells, err := allocate[byte](count)
	if err != nil {
		return nil, fmt.Errorf("flat store for n=%d: %w", n, err)
	}
	return &FlatStore{cells: cells, n: n}, nil
}

// Fill marks every index as a candidate except 0 and 1.
func (s *FlatStore) Fill() {
	for i := range s.cells {
		s.cells[i] = 1
	}
	s.cells[0] = 0
	if len(s.cells) > 1 {
		s.cells[1] = 0
	}
}

func (s *FlatStore) Test(i uint64) bool { return s.cells[i] != 0 }

// Clear eliminates index i. Safe to call concurrently for any indices.
func (s *FlatStore) Clear(i uint64) { s.cells[i] = 0 }

func (s *FlatStore) Limit() uint64 { return s.n }

func (s *FlatStore) SizeBytes() uint64 { return uint64(len(s.cells)) }

// Cells exposes the backing array. Callers must not modify it.
func (s *FlatStore) Cells() []byte { return s.cells }

// clearMultiples eliminates p*p, p*p+p, ... up to Limit().
func (s *FlatStore) clearMultiples(p uint64) {
	cells := s.cells
	for j := p * p; j <= s.n; j += p {
		cells[j] = 0
	}
}
