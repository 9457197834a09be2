package testutil

// IsPrime decides primality by trial division.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// TrialDivision lists every prime in [0, n] by trial division.
func TrialDivision(n uint64) []uint64 {
	var primes []uint64
	for i := uint64(2); i <= n; i++ {
		if IsPrime(i) {
			primes = append(primes, i)
		}
	}
	return primes
}
