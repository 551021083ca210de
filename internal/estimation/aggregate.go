package estimation

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RelativeError returns |reference − estimate| / |reference| × 100.
func RelativeError(estimate, reference float64) float64 {
	if reference == 0 {
		return 0
	}
	return math.Abs(reference-estimate) / math.Abs(reference) * 100
}

// Aggregate reduces the partial results of a plan into an EstimationRun.
//
// Hits are summed as integers, so their order never matters. Weighted sums
// are real-valued and order-independent up to floating-point rounding.
func Aggregate(m Method, plan Plan, partials []PartialResult, reference float64) EstimationRun {
	var hits uint64
	sums := make([]float64, len(partials))
	for i, p := range partials {
		hits += p.Hits
		sums[i] = p.Sum
	}
	sum := floats.Sum(sums)

	estimate := m.Combine(hits, sum, plan.Total)
	run := EstimationRun{
		Method:        m.Name(),
		TotalUnits:    plan.Total,
		WorkerCount:   len(plan.Chunks),
		Partials:      partials,
		Estimate:      estimate,
		Reference:     reference,
		RelativeError: RelativeError(estimate, reference),
	}
	if len(plan.Chunks) > 0 {
		run.Seed = plan.Chunks[0].Params.Seed
	}

	if ex, ok := m.(ExactCombiner); ok {
		run.Exact = ex.Exact(hits, plan.Total)
	}
	if sm, ok := m.(SamplingMethod); ok {
		run.StdError = sm.StandardError(hits, plan.Total)
		run.ChunkSpread = chunkSpread(sm, partials)
	}
	return run
}

// chunkSpread is the count-weighted standard deviation of per-chunk
// estimates. It needs at least two non-empty chunks.
func chunkSpread(sm SamplingMethod, partials []PartialResult) float64 {
	var local, weights []float64
	for _, p := range partials {
		if p.Count == 0 {
			continue
		}
		local = append(local, sm.LocalEstimate(p))
		weights = append(weights, float64(p.Count))
	}
	if len(local) < 2 {
		return 0
	}
	return stat.StdDev(local, weights)
}
