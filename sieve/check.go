package sieve

// IsPrimeByTrialDivision decides primality of n without a store.
func IsPrimeByTrialDivision(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Check re-tests every index of s inside [left, right] by trial division
// and returns the indices whose candidacy is wrong, in ascending order.
func Check(s Store, left, right int64) []uint64 {
	lo, hi := NormalizeRange(left, right)
	hi = min(hi, s.Limit())
	var wrong []uint64
	for i := lo; i <= hi; i++ {
		if s.Test(i) != IsPrimeByTrialDivision(i) {
			wrong = append(wrong, i)
		}
	}
	return wrong
}
