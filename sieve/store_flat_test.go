package sieve

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatStore_Fill(t *testing.T) {
	tests := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0}},
		{1, []byte{0, 0}},
		{2, []byte{0, 0, 1}},
		{5, []byte{0, 0, 1, 1, 1, 1}},
	}
	for _, tc := range tests {
		s, err := NewFlatStore(tc.n)
		require.NoError(t, err)
		s.Fill()
		assert.Equal(t, tc.want, s.Cells(), "n=%d", tc.n)
		assert.Equal(t, tc.n+1, s.SizeBytes())
	}
}

func TestFlatStore_ConcurrentClearsOfOverlappingMultiples(t *testing.T) {
	// GIVEN a filled store
	const n = 10_000
	s, err := NewFlatStore(n)
	require.NoError(t, err)
	s.Fill()

	// WHEN several goroutines clear overlapping multiple sets at once
	var wg sync.WaitGroup
	for _, p := range []uint64{2, 3, 5, 7} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.clearMultiples(p)
		}()
	}
	wg.Wait()

	// THEN every cell is 0 or 1 and exactly the multiples are cleared
	for i := uint64(2); i <= n; i++ {
		c := s.Cells()[i]
		require.LessOrEqual(t, c, byte(1))
		composite := false
		for _, p := range []uint64{2, 3, 5, 7} {
			if i >= p*p && i%p == 0 {
				composite = true
			}
		}
		assert.Equal(t, !composite, s.Test(i), "index %d", i)
	}
}
