package core

import (
	"fmt"
	"math"
	"runtime"
)

const (
	InvalidSeed      = uint64(math.MaxUint64)
	DefaultSamples   = uint64(1) << 20
	DefaultChunkSize = uint64(1) << 16
	NumDividends     = uint64(1) << 32 // every int32
)

// VerifyConfig holds parameters for checking a Divisor against native division.
type VerifyConfig struct {
	NumThreads int
	Seed       uint64 // Use InvalidSeed for random
	Samples    uint64 // pseudo-random dividends when not exhaustive
	Exhaustive bool   // sweep every int32 dividend instead of sampling
	ChunkSize  uint64 // dividends per unit of work handed to a worker
	Verbose    bool
}

// DefaultVerifyConfig creates a configuration with default values.
func DefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{
		NumThreads: runtime.NumCPU(),
		Seed:       InvalidSeed,
		Samples:    DefaultSamples,
		Exhaustive: false,
		ChunkSize:  DefaultChunkSize,
		Verbose:    false,
	}
}

// Validate reports configuration values a check cannot run with.
func (c *VerifyConfig) Validate() error {
	if c.NumThreads < 1 {
		return fmt.Errorf("NumThreads must be >= 1, got %d", c.NumThreads)
	}
	if c.ChunkSize == 0 {
		return fmt.Errorf("ChunkSize must be > 0")
	}
	return nil
}

// NumChecked returns how many stream dividends the config covers,
// not counting edge dividends.
func (c *VerifyConfig) NumChecked() uint64 {
	if c.Exhaustive {
		return NumDividends
	}
	return c.Samples
}

// NumChunks returns the number of work units for total dividends.
func NumChunks(total, chunkSize uint64) uint64 {
	if chunkSize == 0 {
		panic("chunk size cannot be zero")
	}
	return (total + chunkSize - 1) / chunkSize
}
