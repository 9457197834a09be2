package cmd

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMalformedInput is returned for a bound that is not entirely an integer.
	ErrMalformedInput = errors.New("malformed range bound")
	// ErrBoundTooLarge is returned for a bound outside the int64 range.
	ErrBoundTooLarge = errors.New("range bound too large")
)

// ParseBound converts one range argument. Decimal, 0x hex, 0o/0 octal and
// 0b binary forms are accepted; any trailing text is rejected.
func ParseBound(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return v, nil
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrBoundTooLarge, s)
	}
	return 0, fmt.Errorf("%w: %q", ErrMalformedInput, s)
}

// parseRange reads one or two bounds. A single bound is the right end of a
// range starting at 1. The result is not yet normalized.
func parseRange(args []string) (left, right int64, err error) {
	switch len(args) {
	case 1:
		right, err = ParseBound(args[0])
		return 1, right, err
	case 2:
		if left, err = ParseBound(args[0]); err != nil {
			return 0, 0, err
		}
		right, err = ParseBound(args[1])
		return left, right, err
	default:
		return 0, 0, fmt.Errorf("expected 1 or 2 bounds, got %d", len(args))
	}
}
