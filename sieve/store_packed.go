package sieve

import "fmt"

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1

	// firstWord is word 0 after Fill: 0 and 1 are not prime.
	firstWord = 0xffff_ffff_ffff_fffc
)

// PackedStore keeps one bit per index in 64-bit words. Bit i lives in
// word i/64 at position i%64 (least significant bit first).
//
// Clear is a read-modify-write of a whole word, so a PackedStore must only
// be mutated from one goroutine.
type PackedStore struct {
	words []uint64
	n     uint64
}

// NewPackedStore allocates ceil((n+1)/64) zeroed words.
func NewPackedStore(n uint64) (*PackedStore, error) {
	return newPackedStore(n, 0)
}

func newPackedStore(n, limit uint64) (*PackedStore, error) {
	count := int(n>>wordShift) + 1
	if err := checkFootprint(uint64(count)*8, limit); err != nil {
		return nil, fmt.Errorf("packed store for n=%d: %w", n, err)
	}
	words, err := allocate[uint64](count)
	if err != nil {
		return nil, fmt.Errorf("packed store for n=%d: %w", n, err)
	}
	return &PackedStore{words: words, n: n}, nil
}

// Fill marks every index as a candidate except 0 and 1.
func (s *PackedStore) Fill() {
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	s.words[0] = firstWord
}

func (s *PackedStore) Test(i uint64) bool {
	return s.words[i>>wordShift]&(1<<(i&wordMask)) != 0
}

func (s *PackedStore) Clear(i uint64) {
	s.words[i>>wordShift] &^= 1 << (i & wordMask)
}

func (s *PackedStore) Limit() uint64 { return s.n }

func (s *PackedStore) SizeBytes() uint64 { return uint64(len(s.words)) * 8 }

// Words exposes the backing array. Bits above Limit() in the last word are
// left set by Fill and carry no meaning. Callers must not modify it.
func (s *PackedStore) Words() []uint64 { return s.words }
