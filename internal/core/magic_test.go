package core

import (
	"math"
	"math/rand"
	"testing"
)

func isPow2(ad uint32) bool {
	return ad&(ad-1) == 0
}

// The refinement loop runs at most 32 times for any 32-bit divisor.
func TestComputeMagicStepsBounded(t *testing.T) {
	const maxSteps = 32
	check := func(ad int32) {
		t.Helper()
		mc, steps := computeMagic(ad)
		if steps < 1 || steps > maxSteps {
			t.Fatalf("computeMagic(%d) took %d steps, want 1..%d", ad, steps, maxSteps)
		}
		if int(mc.Shift) != steps-1 {
			t.Fatalf("computeMagic(%d): shift %d inconsistent with %d steps", ad, mc.Shift, steps)
		}
	}

	for ad := int32(3); ad < 1<<16; ad++ {
		if !isPow2(uint32(ad)) {
			check(ad)
		}
	}
	rng := rand.New(rand.NewSource(123))
	for i := 0; i < 20000; i++ {
		ad := int32(rng.Int63n(math.MaxInt32-2) + 3)
		if !isPow2(uint32(ad)) {
			check(ad)
		}
	}
	check(math.MaxInt32)
	check(math.MaxInt32 - 1)
}

func TestComputeMagicDeterministic(t *testing.T) {
	for _, d := range []int32{3, -3, 7, 100, -100, 123, -123, math.MaxInt32} {
		a, b := ComputeMagic(d), ComputeMagic(d)
		if a != b {
			t.Errorf("ComputeMagic(%d) not deterministic: %v vs %v", d, a, b)
		}
	}
}

func TestComputeMagicPanics(t *testing.T) {
	for _, d := range []int32{0, 1, -1, math.MinInt32} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("ComputeMagic(%d) should panic", d)
				}
			}()
			_ = ComputeMagic(d)
		}()
	}
}

func TestMagicConstantsString(t *testing.T) {
	mc := MagicConstants{Magic: -0x6DB6DB6D, Shift: 2}
	if got, want := mc.String(), "{M:0x92492493, s:2}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
