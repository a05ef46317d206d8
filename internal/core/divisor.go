package core

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	minInt32 = math.MinInt32
	maxInt32 = math.MaxInt32
)

// Kind tags which division strategy a Divisor uses.
type Kind uint8

const (
	KindShift Kind = iota + 1 // |d| == 2^k
	KindMagic                 // any other non-zero d
)

func (k Kind) String() string {
	switch k {
	case KindShift:
		return "shift"
	case KindMagic:
		return "magic"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Divisor divides int32 dividends by a fixed non-zero int32 divisor without
// a hardware divide. It is an immutable value; the zero value is not usable.
//
// For KindShift, shift is k where |d| == 2^k. For KindMagic, magic and shift
// are the constants from ComputeMagic(|d|).
type Divisor struct {
	d        int32
	kind     Kind
	negative bool
	shift    uint8
	magic    int32
}

// NewDivisor classifies d and precomputes its strategy.
// Panics if d == 0.
func NewDivisor(d int32) Divisor {
	if d == 0 {
		panic("division by zero")
	}
	// |math.MinInt32| wraps back to itself; as a uint32 it is 2^31.
	abs := uint32(d)
	if d < 0 {
		abs = uint32(-d)
	}
	k := 31 - bits.LeadingZeros32(abs)
	if uint32(1)<<k == abs {
		return Divisor{d: d, kind: KindShift, negative: d < 0, shift: uint8(k)}
	}
	mc := ComputeMagic(int32(abs))
	return Divisor{d: d, kind: KindMagic, negative: d < 0, shift: mc.Shift, magic: mc.Magic}
}

// Divide returns n / d truncated toward zero. math.MinInt32 / -1 wraps to
// math.MinInt32, like Go's own int32 division.
func (v Divisor) Divide(n int32) int32 {
	if v.kind == KindShift {
		return v.divideShift(n)
	}
	return v.divideMagic(n)
}

func (v Divisor) divideShift(n int32) int32 {
	if v.shift == 0 {
		if v.negative {
			return -n
		}
		return n
	}
	// Bias negative dividends by 2^shift-1 so the arithmetic shift truncates.
	i := n >> (v.shift - 1)
	i = int32(uint32(i) >> (32 - v.shift))
	i += n
	i >>= v.shift
	if v.negative {
		return -i
	}
	return i
}

func (v Divisor) divideMagic(n int32) int32 {
	r := int32((int64(v.magic) * int64(n)) >> 32)
	if v.magic < 0 {
		r += n
	}
	r >>= v.shift
	o := n >> 31
	if v.negative {
		return o - r
	}
	return r - o
}

// Value returns the divisor d.
func (v Divisor) Value() int32 {
	return v.d
}

// Kind returns the strategy variant.
func (v Divisor) Kind() Kind {
	return v.kind
}

// Constants returns the derived constants. Shift divisors report a zero
// multiplier and their power-of-two exponent.
func (v Divisor) Constants() MagicConstants {
	return MagicConstants{Magic: v.magic, Shift: v.shift}
}

// String provides a string representation.
func (v Divisor) String() string {
	switch v.kind {
	case KindShift:
		return fmt.Sprintf("shift(d=%d, k=%d)", v.d, v.shift)
	case KindMagic:
		return fmt.Sprintf("magic(d=%d, M=0x%08x, s=%d)", v.d, uint32(v.magic), v.shift)
	default:
		return "Divisor{}"
	}
}
