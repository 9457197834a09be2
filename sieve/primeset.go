package sieve

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Bitmap returns the primes of s inside [left, right] as a compressed set.
func Bitmap(s Store, left, right int64) *roaring64.Bitmap {
	bm := roaring64.New()
	for p := range Primes(s, left, right) {
		bm.Add(p)
	}
	bm.RunOptimize()
	return bm
}

// Difference lists, in ascending order, the values present in exactly one
// of a and b. It is empty when both sets agree.
func Difference(a, b *roaring64.Bitmap) []uint64 {
	return roaring64.Xor(a, b).ToArray()
}
