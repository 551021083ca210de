package estimation

import (
	"math"
	"testing"
)

func TestQuarterCircle_Guarded(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 1},
		{1, 0},
		{math.Nextafter(1, 2), 0},
		{1.5, 0},
	}
	for _, tt := range tests {
		got := quarterCircle(tt.x)
		if math.IsNaN(got) {
			t.Fatalf("quarterCircle(%v) is NaN", tt.x)
		}
		if got != tt.want {
			t.Errorf("quarterCircle(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got := quarterCircle(0.6); math.Abs(got-0.8) > 1e-15 {
		t.Errorf("quarterCircle(0.6) = %v, want 0.8", got)
	}
}

func TestSimpsonWeight(t *testing.T) {
	t.Parallel()
	want := []float64{1, 4, 2, 4, 2, 4}
	for j, w := range want {
		if got := simpsonWeight(uint64(j)); got != w {
			t.Errorf("simpsonWeight(%d) = %v, want %v", j, got, w)
		}
	}
}

func TestSimpson_Units(t *testing.T) {
	t.Parallel()
	s := Simpson{}
	for n, want := range map[uint64]uint64{0: 0, 1: 2, 2: 2, 9_999: 10_000, 10_000: 10_000} {
		if got := s.Units(n); got != want {
			t.Errorf("Units(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestSimpson_SingleRangeAccuracy(t *testing.T) {
	t.Parallel()
	const n = 10_000
	s := Simpson{}
	sum := SimpsonPartialSum(0, n, n)
	got := s.Combine(0, sum, n)
	if math.Abs(got-math.Pi) >= 1e-6 {
		t.Errorf("Simpson(N=%d) = %.15f, error %g exceeds 1e-6", n, got, math.Abs(got-math.Pi))
	}
}

func TestSimpson_SplitMatchesWhole(t *testing.T) {
	t.Parallel()
	const n = 100_000
	whole := SimpsonPartialSum(0, n, n)
	for _, workers := range []int{1, 3, 4, 7, 16} {
		plan, err := Partition(n, workers, Params{Total: n})
		if err != nil {
			t.Fatal(err)
		}
		var split float64
		for _, u := range plan.Units() {
			split += Simpson{}.Sample(u).Sum
		}
		if math.Abs(split-whole) > 1e-7 {
			t.Errorf("workers=%d: split sum %v differs from whole %v", workers, split, whole)
		}
	}
}

func TestSimpson_EmptyAndZeroTotal(t *testing.T) {
	t.Parallel()
	if got := SimpsonPartialSum(5, 0, 10); got != 0 {
		t.Errorf("empty range sum = %v, want 0", got)
	}
	if got := (Simpson{}).Combine(0, 12, 0); got != 0 {
		t.Errorf("Combine with zero total = %v, want 0", got)
	}
}
