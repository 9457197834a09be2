package sieve

import (
	"iter"
	"math/bits"
	"slices"
)

// NormalizeRange orders the bounds and clamps negatives to zero.
func NormalizeRange(left, right int64) (lo, hi uint64) {
	if left > right {
		left, right = right, left
	}
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	return uint64(left), uint64(right)
}

// Primes yields, in ascending order, every index of s inside the normalized
// [left, right] that is still a candidate. The upper bound is clamped to
// s.Limit(). The sequence can be ranged over any number of times and never
// modifies s.
func Primes(s Store, left, right int64) iter.Seq[uint64] {
	lo, hi := NormalizeRange(left, right)
	hi = min(hi, s.Limit())
	return func(yield func(uint64) bool) {
		if lo > hi {
			return
		}
		if packed, ok := s.(*PackedStore); ok {
			packed.scan(lo, hi, yield)
			return
		}
		for i := lo; i <= hi; i++ {
			if s.Test(i) && !yield(i) {
				return
			}
		}
	}
}

// CollectPrimes returns the primes of s inside [left, right] as a slice.
func CollectPrimes(s Store, left, right int64) []uint64 {
	return slices.Collect(Primes(s, left, right))
}

// CountPrimes returns how many primes of s lie inside [left, right].
func CountPrimes(s Store, left, right int64) int {
	count := 0
	for range Primes(s, left, right) {
		count++
	}
	return count
}

// scan walks [lo, hi] a word at a time, skipping empty words.
func (s *PackedStore) scan(lo, hi uint64, yield func(uint64) bool) {
	first, last := lo>>wordShift, hi>>wordShift
	for w := first; w <= last; w++ {
		word := s.words[w]
		if w == first {
			word &= ^uint64(0) << (lo & wordMask)
		}
		if w == last {
			word &= ^uint64(0) >> (wordMask - (hi & wordMask))
		}
		for word != 0 {
			if !yield(w<<wordShift | uint64(bits.TrailingZeros64(word))) {
				return
			}
			word &= word - 1
		}
	}
}
