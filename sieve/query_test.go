package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primerange/primerange/sieve/internal/testutil"
)

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		left, right int64
		lo, hi      uint64
	}{
		{2, 10, 2, 10},
		{10, 2, 2, 10},
		{-5, 7, 0, 7},
		{7, -5, 0, 7},
		{-9, -3, 0, 0},
		{4, 4, 4, 4},
	}
	for _, tc := range tests {
		lo, hi := NormalizeRange(tc.left, tc.right)
		assert.Equal(t, tc.lo, lo, "left=%d right=%d", tc.left, tc.right)
		assert.Equal(t, tc.hi, hi, "left=%d right=%d", tc.left, tc.right)
	}
}

func TestCollectPrimes_Scenario(t *testing.T) {
	// GIVEN a sequential sieve over [0, 30]
	s, err := Sequential(30)
	require.NoError(t, err)

	// WHEN collecting [10, 30]
	got := CollectPrimes(s, 10, 30)

	// THEN only the primes inside the range are returned
	assert.Equal(t, []uint64{11, 13, 17, 19, 23, 29}, got)
}

func TestCollectPrimes_SwappedBoundsMatchOrdered(t *testing.T) {
	for _, kind := range []Kind{KindSequential, KindParallel} {
		s, err := Run(10, Config{Engine: kind, Threads: 2})
		require.NoError(t, err)
		assert.Equal(t, CollectPrimes(s, 2, 10), CollectPrimes(s, 10, 2), "engine %s", kind)
	}
}

func TestCollectPrimes_GoldenRanges(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	for _, tc := range dataset.Ranges {
		for _, kind := range []Kind{KindSequential, KindParallel} {
			s, err := Run(tc.N, Config{Engine: kind, Threads: 4})
			require.NoError(t, err)
			got := CollectPrimes(s, tc.Left, tc.Right)
			if len(tc.Primes) == 0 {
				assert.Empty(t, got, "n=%d [%d, %d] engine %s", tc.N, tc.Left, tc.Right, kind)
				continue
			}
			assert.Equal(t, tc.Primes, got, "n=%d [%d, %d] engine %s", tc.N, tc.Left, tc.Right, kind)
		}
	}
}

func TestPrimes_WordBoundaries(t *testing.T) {
	// GIVEN a packed and a flat store over the same range
	const n = 300
	packed, err := Sequential(n)
	require.NoError(t, err)
	flat, err := Parallel(n, 5)
	require.NoError(t, err)

	// WHEN every [lo, hi] pair around word edges is queried
	edges := []int64{0, 1, 2, 62, 63, 64, 65, 127, 128, 129, 191, 192, 255, 256, 299, 300}
	for _, lo := range edges {
		for _, hi := range edges {
			if lo > hi {
				continue
			}
			// THEN the word scan agrees with per-index testing and trial division
			var want []uint64
			for i := lo; i <= hi; i++ {
				if testutil.IsPrime(uint64(i)) {
					want = append(want, uint64(i))
				}
			}
			assert.Equal(t, want, CollectPrimes(packed, lo, hi), "packed [%d, %d]", lo, hi)
			assert.Equal(t, want, CollectPrimes(flat, lo, hi), "flat [%d, %d]", lo, hi)
		}
	}
}

func TestPrimes_RightClampedToStoreLimit(t *testing.T) {
	s, err := Sequential(20)
	require.NoError(t, err)
	assert.Equal(t, []uint64{17, 19}, CollectPrimes(s, 15, 1_000_000))
	assert.Empty(t, CollectPrimes(s, 21, 1_000_000))
}

func TestPrimes_IsRestartableAndStopsEarly(t *testing.T) {
	s, err := Sequential(100)
	require.NoError(t, err)
	seq := Primes(s, 0, 100)

	// first pass stops after three values
	var firstThree []uint64
	for p := range seq {
		firstThree = append(firstThree, p)
		if len(firstThree) == 3 {
			break
		}
	}
	assert.Equal(t, []uint64{2, 3, 5}, firstThree)

	// a second pass starts over and sees everything
	count := 0
	for range seq {
		count++
	}
	assert.Equal(t, 25, count)
}

func TestPrimes_DoesNotMutateStore(t *testing.T) {
	s, err := Sequential(500)
	require.NoError(t, err)
	before := append([]uint64(nil), s.Words()...)

	_ = CollectPrimes(s, 0, 500)
	_ = CountPrimes(s, 100, 400)

	assert.Equal(t, before, s.Words())
}
