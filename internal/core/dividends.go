package core

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// DividendAt returns the i-th dividend of the reproducible stream for seed:
// the low 32 bits of xxhash64 over (i, seed), both little endian.
// The stream is random access so workers can split it by index.
func DividendAt(i, seed uint64) int32 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], i)
	binary.LittleEndian.PutUint64(buf[8:], seed)
	return int32(uint32(xxhash.Sum64(buf[:])))
}

// Dividends fills dst with consecutive stream values starting at index start.
func Dividends(dst []int32, start, seed uint64) {
	for i := range dst {
		dst[i] = DividendAt(start+uint64(i), seed)
	}
}
