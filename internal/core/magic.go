// Package core provides the divisor strategies and their derived constants.
package core

import "fmt"

// MagicConstants holds the multiplier and post-shift for signed 32-bit
// division by an invariant divisor.
type MagicConstants struct {
	Magic int32 // multiplier, reinterpreted as signed
	Shift uint8 // extra arithmetic right shift after the multiply-high
}

// String renders the constants the way they appear in tables.
func (mc MagicConstants) String() string {
	return fmt.Sprintf("{M:0x%08x, s:%d}", uint32(mc.Magic), mc.Shift)
}

// ComputeMagic computes the magic constants for signed division by d.
// Based on Hacker's Delight, 2nd ed., Figure 10-1. All intermediates live in
// uint64 so values up to 2^31 never overflow.
//
// d must satisfy 2 <= |d| < 2^31. Divisors with |d| a power of two still
// yield valid constants, but NewDivisor routes those to the shift path.
func ComputeMagic(d int32) MagicConstants {
	mc, _ := computeMagic(d)
	return mc
}

// computeMagic also reports the number of refinement steps taken.
func computeMagic(d int32) (MagicConstants, int) {
	if d == 0 {
		panic("division by zero")
	}
	if d == 1 || d == -1 || d == minInt32 {
		panic(fmt.Sprintf("ComputeMagic: no magic constants for divisor %d", d))
	}

	const two31 = uint64(1) << 31
	ad := uint64(d)
	if d < 0 {
		ad = uint64(-int64(d))
	}
	t := two31 + uint64(uint32(d)>>31)
	anc := t - 1 - t%ad // |nc|
	q1 := two31 / anc   // q1 = 2^p / |nc|
	r1 := two31 - q1*anc
	q2 := two31 / ad // q2 = 2^p / |d|
	r2 := two31 - q2*ad

	p := 31
	steps := 0
	for {
		p++
		steps++
		q1 *= 2
		r1 *= 2
		if r1 >= anc {
			q1++
			r1 -= anc
		}
		q2 *= 2
		r2 *= 2
		if r2 >= ad {
			q2++
			r2 -= ad
		}
		delta := ad - r2
		if !(q1 < delta || (q1 == delta && r1 == 0)) {
			break
		}
	}

	m := q2 + 1
	if d < 0 {
		m = -m
	}
	return MagicConstants{Magic: int32(uint32(m)), Shift: uint8(p - 32)}, steps
}
