// Package divmagic divides int32 values by a fixed divisor without a
// hardware divide instruction.
//
// A Divisor is built once per divisor value and may then be shared freely
// between goroutines:
//
//	by7 := divmagic.New(7)
//	q := by7.Divide(-100) // -14
//
// Divisors whose magnitude is a power of two use a shift-and-bias sequence;
// all others use a multiply-high by a precomputed magic constant followed by
// a shift (Hacker's Delight, chapter 10). Results always equal Go's native
// truncating division, including math.MinInt32 / -1 == math.MinInt32.
package divmagic

import (
	"errors"
	"fmt"
	"io"

	"divmagic/internal/core"
	"divmagic/internal/serial"
	"divmagic/internal/verify"
)

type (
	Kind           = core.Kind
	MagicConstants = core.MagicConstants
	VerifyConfig   = core.VerifyConfig
	Report         = verify.Report
	MismatchError  = core.MismatchError
)

const (
	KindShift = core.KindShift
	KindMagic = core.KindMagic
)

// ErrCorruptDivisor is returned when decoding a malformed Divisor.
var ErrCorruptDivisor = core.ErrCorruptDivisor

// Divisor is a precomputed division strategy for one non-zero divisor.
type Divisor struct {
	div core.Divisor
}

// New builds the Divisor for d. It panics if d == 0.
func New(d int32) Divisor {
	return Divisor{div: core.NewDivisor(d)}
}

// Divide returns n / d, truncated toward zero.
func (v Divisor) Divide(n int32) int32 {
	return v.div.Divide(n)
}

// Value returns the divisor.
func (v Divisor) Value() int32 { return v.div.Value() }

// Kind reports whether v uses the shift or the magic strategy.
func (v Divisor) Kind() Kind { return v.div.Kind() }

// Constants returns the derived constants.
func (v Divisor) Constants() MagicConstants { return v.div.Constants() }

func (v Divisor) String() string { return v.div.String() }

// DefaultVerifyConfig returns the default configuration for Verify.
func DefaultVerifyConfig() VerifyConfig {
	return core.DefaultVerifyConfig()
}

// Verify checks v against native division over the dividends selected by cfg.
func (v Divisor) Verify(cfg VerifyConfig) (Report, error) {
	return verify.Check(v.div, cfg)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Divisor) MarshalBinary() ([]byte, error) {
	return v.div.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Divisor) UnmarshalBinary(data []byte) error {
	return v.div.UnmarshalBinary(data)
}

// Encode writes divs to w as length-prefixed records.
func Encode(w io.Writer, divs []Divisor) error {
	for i := range divs {
		if err := serial.WriteRecord(w, divs[i]); err != nil {
			return fmt.Errorf("encoding divisor %d: %w", i, err)
		}
	}
	return nil
}

// Decode reads records written by Encode until r is exhausted.
func Decode(r io.Reader) ([]Divisor, error) {
	var divs []Divisor
	for {
		var v Divisor
		err := serial.ReadRecord(r, &v, core.EncodedSize)
		if errors.Is(err, io.EOF) {
			return divs, nil
		}
		if err != nil {
			return divs, fmt.Errorf("decoding divisor %d: %w", len(divs), err)
		}
		divs = append(divs, v)
	}
}
