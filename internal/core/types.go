package core

import (
	"errors"
	"fmt"
)

// ErrCorruptDivisor is returned when an encoded Divisor is malformed or its
// stored constants do not match the ones derived from its divisor.
var ErrCorruptDivisor = errors.New("corrupt divisor encoding")

// MismatchError reports a dividend for which a Divisor disagrees with
// native int32 division.
type MismatchError struct {
	Divisor  int32
	Dividend int32
	Got      int32
	Want     int32
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("divide(%d) by %d = %d, want %d", e.Dividend, e.Divisor, e.Got, e.Want)
}

// EdgeDividends returns the fixed dividends every check covers for divisor d:
// zero, small values, the int32 extremes, and the neighbourhood of ±d.
// Duplicates are removed; order is stable.
func EdgeDividends(d int32) []int32 {
	cands := []int64{
		0, 1, -1, 2, -2,
		minInt32, minInt32 + 1, maxInt32, maxInt32 - 1,
	}
	for _, base := range []int64{int64(d), -int64(d)} {
		cands = append(cands, base-1, base, base+1)
	}

	seen := make(map[int32]struct{}, len(cands))
	out := make([]int32, 0, len(cands))
	for _, c := range cands {
		if c < minInt32 || c > maxInt32 {
			continue
		}
		n := int32(c)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
