package estimation

import (
	"math"
	"time"
)

// quarterCircle evaluates sqrt(1 - x²). Rounding can make 1 - x² zero or
// slightly negative next to x = 1; those terms are 0 by definition here, so
// no NaN ever reaches a sum.
func quarterCircle(x float64) float64 {
	v := 1 - x*x
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

// simpsonWeight returns the composite Simpson coefficient of interior point j.
// The opening endpoint j = 0 has weight 1.
func simpsonWeight(j uint64) float64 {
	switch {
	case j == 0:
		return 1
	case j%2 == 1:
		return 4
	default:
		return 2
	}
}

// SimpsonPartialSum returns Σ w_j · sqrt(1 - (j/total)²) for j in
// [start, start+count). Ranges are half-open, so a boundary index between two
// adjacent chunks belongs to the later chunk only and is never summed twice.
// The closing endpoint j = total is not part of any range; Simpson.Combine
// adds it once.
func SimpsonPartialSum(start, count, total uint64) float64 {
	if count == 0 || total == 0 {
		return 0
	}
	n := float64(total)
	var sum float64
	for j := start; j < start+count; j++ {
		sum += simpsonWeight(j) * quarterCircle(float64(j)/n)
	}
	return sum
}

// Simpson estimates pi by integrating the quarter circle over [0, 1] with the
// composite Simpson rule.
type Simpson struct{}

// Name returns the registry key of the method.
func (Simpson) Name() string { return "simpson" }

// Description returns a human-readable label.
func (Simpson) Description() string { return "Simpson's rule (integral of sqrt(1-x²))" }

// Units rounds n up to the next even number: the rule needs pairs of
// subintervals.
func (Simpson) Units(n uint64) uint64 {
	if n%2 == 1 {
		return n + 1
	}
	return n
}

// Sample computes the weighted partial sum of one unit.
func (Simpson) Sample(unit WorkUnit) PartialResult {
	start := time.Now()
	sum := SimpsonPartialSum(unit.Start, unit.Count, unit.Params.Total)
	return PartialResult{
		Index:   unit.Index,
		Start:   unit.Start,
		Count:   unit.Count,
		Sum:     sum,
		Elapsed: time.Since(start),
	}
}

// Combine adds the closing endpoint and returns 4 × Σ / (3 × total).
func (Simpson) Combine(_ uint64, sum float64, total uint64) float64 {
	if total == 0 {
		return 0
	}
	sum += quarterCircle(1)
	return (4 * sum) / (3 * float64(total))
}
