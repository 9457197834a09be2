package sieve

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmap_HoldsRangePrimes(t *testing.T) {
	s, err := Sequential(100)
	require.NoError(t, err)

	bm := Bitmap(s, 10, 30)

	assert.Equal(t, uint64(6), bm.GetCardinality())
	assert.Equal(t, []uint64{11, 13, 17, 19, 23, 29}, bm.ToArray())
}

func TestDifference(t *testing.T) {
	a := roaring64.BitmapOf(2, 3, 5, 7)
	b := roaring64.BitmapOf(2, 3, 5, 9)

	assert.Equal(t, []uint64{7, 9}, Difference(a, b))
	assert.Empty(t, Difference(a, a.Clone()))
}
