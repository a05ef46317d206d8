package util

import (
	"math/rand"
	"time"
)

// RandomSeed generates a random seed for the dividend stream.
func RandomSeed() uint64 {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return r.Uint64()
}
