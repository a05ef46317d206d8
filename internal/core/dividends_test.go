package core

import "testing"

func TestDividendAtDeterministic(t *testing.T) {
	for i := uint64(0); i < 1000; i++ {
		if a, b := DividendAt(i, 123), DividendAt(i, 123); a != b {
			t.Fatalf("DividendAt(%d, 123) not deterministic: %d vs %d", i, a, b)
		}
	}
}

func TestDividendAtSeedMatters(t *testing.T) {
	same := 0
	for i := uint64(0); i < 1000; i++ {
		if DividendAt(i, 1) == DividendAt(i, 2) {
			same++
		}
	}
	if same > 5 {
		t.Errorf("streams for seeds 1 and 2 agree on %d/1000 indices", same)
	}
}

// The stream should cover both signs and not collapse to a few values.
func TestDividendStreamSpread(t *testing.T) {
	const n = 10000
	buf := make([]int32, n)
	Dividends(buf, 0, 42)

	neg := 0
	seen := make(map[int32]struct{}, n)
	for i, v := range buf {
		if v != DividendAt(uint64(i), 42) {
			t.Fatalf("Dividends[%d] = %d, want DividendAt = %d", i, v, DividendAt(uint64(i), 42))
		}
		if v < 0 {
			neg++
		}
		seen[v] = struct{}{}
	}
	if neg < n/3 || neg > 2*n/3 {
		t.Errorf("%d of %d dividends negative, want roughly half", neg, n)
	}
	if len(seen) < n-10 {
		t.Errorf("only %d distinct dividends out of %d", len(seen), n)
	}
}

func TestDividendsOffset(t *testing.T) {
	buf := make([]int32, 16)
	Dividends(buf, 500, 7)
	for i, v := range buf {
		if want := DividendAt(500+uint64(i), 7); v != want {
			t.Errorf("Dividends(start=500)[%d] = %d, want %d", i, v, want)
		}
	}
}
