package core

import (
	"encoding/binary"
	"fmt"
)

const (
	encodingVersion = 1
	// EncodedSize is the length of a binary-encoded Divisor.
	EncodedSize = 13
)

var encodingMagic = [2]byte{'D', 'M'}

// MarshalBinary implements encoding.BinaryMarshaler.
// Layout (little endian): "DM", version, kind, divisor int32, magic int32, shift.
func (v Divisor) MarshalBinary() ([]byte, error) {
	if v.kind != KindShift && v.kind != KindMagic {
		return nil, fmt.Errorf("cannot marshal uninitialized Divisor")
	}
	buf := make([]byte, EncodedSize)
	buf[0], buf[1] = encodingMagic[0], encodingMagic[1]
	buf[2] = encodingVersion
	buf[3] = byte(v.kind)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(v.d))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(v.magic))
	buf[12] = v.shift
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The constants are
// re-derived from the stored divisor and must match the stored ones.
func (v *Divisor) UnmarshalBinary(data []byte) error {
	if len(data) != EncodedSize {
		return fmt.Errorf("%w: length %d, want %d", ErrCorruptDivisor, len(data), EncodedSize)
	}
	if data[0] != encodingMagic[0] || data[1] != encodingMagic[1] {
		return fmt.Errorf("%w: bad magic %q", ErrCorruptDivisor, data[:2])
	}
	if data[2] != encodingVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptDivisor, data[2])
	}
	d := int32(binary.LittleEndian.Uint32(data[4:8]))
	if d == 0 {
		return fmt.Errorf("%w: zero divisor", ErrCorruptDivisor)
	}

	want := NewDivisor(d)
	kind := Kind(data[3])
	magic := int32(binary.LittleEndian.Uint32(data[8:12]))
	shift := data[12]
	if kind != want.kind {
		return fmt.Errorf("%w: divisor %d stored as %v, want %v", ErrCorruptDivisor, d, kind, want.kind)
	}
	if magic != want.magic || shift != want.shift {
		return fmt.Errorf("%w: divisor %d stored with %v, want %v", ErrCorruptDivisor, d,
			MagicConstants{Magic: magic, Shift: shift}, want.Constants())
	}
	*v = want
	return nil
}
