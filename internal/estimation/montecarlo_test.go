package estimation

import (
	"math"
	"math/big"
	"testing"
)

// fixedEntropy returns a deterministic entropy source and a pointer to the
// number of times it has been called.
func fixedEntropy() (Entropy, *int) {
	calls := 0
	return func() (uint64, uint64) {
		calls++
		return uint64(calls), uint64(calls) * 7919
	}, &calls
}

func TestCountInside_ZeroTrials(t *testing.T) {
	t.Parallel()
	entropy, calls := fixedEntropy()
	if got := CountInside(NewStream(82, 0), 0, 10, entropy); got != 0 {
		t.Errorf("CountInside(n=0) = %d, want 0", got)
	}
	if *calls != 0 {
		t.Errorf("entropy called %d times for zero trials", *calls)
	}
}

func TestCountInside_ConvergesToPi(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10M-trial sampling in short mode")
	}
	t.Parallel()
	const n = 10_000_000
	hits := CountInside(NewStream(82, 0), n, 0, nil)
	estimate := 4 * float64(hits) / n
	if math.Abs(estimate-math.Pi) > 0.01 {
		t.Errorf("estimate %f is not within 0.01 of pi", estimate)
	}
}

func TestCountInside_Deterministic(t *testing.T) {
	t.Parallel()
	a := CountInside(NewStream(42, 3), 50_000, 0, nil)
	b := CountInside(NewStream(42, 3), 50_000, 0, nil)
	if a != b {
		t.Errorf("same seed and stream gave %d and %d", a, b)
	}
}

func TestNewStream_DistinctPerIndex(t *testing.T) {
	t.Parallel()
	seen := make(map[uint64]int)
	for i := 0; i < 64; i++ {
		first := NewStream(82, i).Uint64()
		if prev, ok := seen[first]; ok {
			t.Fatalf("streams %d and %d start with the same value", prev, i)
		}
		seen[first] = i
	}
}

func TestCountInside_ReseedCadence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n, reseed uint64
		wantCalls int
	}{
		{n: 100, reseed: 10, wantCalls: 10},
		{n: 101, reseed: 10, wantCalls: 11},
		{n: 5, reseed: 10, wantCalls: 1},
		{n: 100, reseed: 0, wantCalls: 0},
		{n: 100, reseed: 1, wantCalls: 100},
	}
	for _, tt := range tests {
		entropy, calls := fixedEntropy()
		CountInside(NewStream(1, 0), tt.n, tt.reseed, entropy)
		if *calls != tt.wantCalls {
			t.Errorf("n=%d reseed=%d: entropy called %d times, want %d", tt.n, tt.reseed, *calls, tt.wantCalls)
		}
	}
}

// TestCountInside_ReseedDoesNotBias checks the only requirement on the
// re-seed policy: the estimate stays centered on pi.
func TestCountInside_ReseedDoesNotBias(t *testing.T) {
	t.Parallel()
	const n = 2_000_000
	hits := CountInside(NewStream(7, 0), n, 10_000, CryptoEntropy)
	estimate := 4 * float64(hits) / n
	// Six standard errors (~0.007) keeps this robust against unlucky draws.
	if math.Abs(estimate-math.Pi) > 0.007 {
		t.Errorf("reseeded estimate %f drifts from pi", estimate)
	}
}

func TestMonteCarlo_Sample(t *testing.T) {
	t.Parallel()
	mc := MonteCarlo{}
	unit := WorkUnit{Index: 2, Start: 200, Count: 1000, Params: Params{Total: 4000, Seed: 9}}
	got := mc.Sample(unit)

	want := CountInside(NewStream(9, 2), 1000, 0, nil)
	if got.Hits != want {
		t.Errorf("Sample hits = %d, want %d", got.Hits, want)
	}
	if got.Index != 2 || got.Start != 200 || got.Count != 1000 {
		t.Errorf("Sample did not copy the unit range: %+v", got)
	}
	if empty := mc.Sample(WorkUnit{Index: 1}); empty.Hits != 0 {
		t.Errorf("empty unit produced %d hits", empty.Hits)
	}
}

func TestMonteCarlo_CombineAndExact(t *testing.T) {
	t.Parallel()
	mc := MonteCarlo{}
	if got := mc.Combine(785, 0, 1000); got != 3.14 {
		t.Errorf("Combine = %v, want 3.14", got)
	}
	if got := mc.Combine(5, 0, 0); got != 0 {
		t.Errorf("Combine with zero total = %v, want 0", got)
	}
	if got := mc.Exact(785, 1000); got.Cmp(big.NewRat(314, 100)) != 0 {
		t.Errorf("Exact = %s, want 157/50", got.RatString())
	}
	if se := mc.StandardError(785, 1000); se <= 0 || se > 0.06 {
		t.Errorf("StandardError = %v, expected ~0.052", se)
	}
}
