package sieve

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// sieveLimit is the exclusive upper bound for base primes. The +1 covers
// float sqrt landing just under an exact root.
func sieveLimit(n uint64) uint64 {
	return uint64(math.Sqrt(float64(n)+1)) + 1
}

// Sequential sieves [0, n] on a single goroutine over a PackedStore.
// It is the reference every other engine must agree with.
func Sequential(n uint64) (*PackedStore, error) {
	return sequential(n, Config{Engine: KindSequential})
}

func sequential(n uint64, cfg Config) (*PackedStore, error) {
	s, err := newPackedStore(n, cfg.MaxMemory)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"engine": KindSequential, "n": n}).
		Debugf("allocated packed store (%s)", humanize.IBytes(s.SizeBytes()))

	s.Fill()
	words := s.words
	limit := sieveLimit(n)
	for p := uint64(2); p < limit; p++ {
		if words[p>>wordShift]&(1<<(p&wordMask)) == 0 {
			continue
		}
		for j := p * p; j <= n; j += p {
			words[j>>wordShift] &^= 1 << (j & wordMask)
		}
	}
	return s, nil
}
