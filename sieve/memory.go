package sieve

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// cellCount returns n+1 as an int, or ErrAllocation when [0, n] has more
// indices than a slice can hold.
func cellCount(n uint64) (int, error) {
	if n >= math.MaxInt {
		return 0, fmt.Errorf("%w: range [0, %d] has too many indices", ErrAllocation, n)
	}
	return int(n + 1), nil
}

// checkFootprint rejects a store larger than limit bytes. A zero limit means
// the machine's total memory; when that is unknown no ceiling applies.
func checkFootprint(size, limit uint64) error {
	if limit == 0 {
		limit = totalMemory()
	}
	if limit != 0 && size > limit {
		return fmt.Errorf("%w: store needs %s, limit is %s",
			ErrAllocation, humanize.IBytes(size), humanize.IBytes(limit))
	}
	return nil
}

// allocate turns a runtime refusal to make the slice into ErrAllocation.
func allocate[T uint64 | byte](count int) (cells []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			cells = nil
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	return make([]T, count), nil
}
