package estimation

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                string
		estimate, reference float64
		want                float64
	}{
		{"exact", math.Pi, math.Pi, 0},
		{"one percent low", 99, 100, 1},
		{"one percent high", 101, 100, 1},
		{"zero reference", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, RelativeError(tt.estimate, tt.reference), 1e-12)
		})
	}
}

func TestAggregate_MonteCarlo(t *testing.T) {
	t.Parallel()
	plan, err := Partition(1000, 2, Params{Total: 1000, Seed: 82})
	require.NoError(t, err)
	partials := []PartialResult{
		{Index: 0, Start: 0, Count: 500, Hits: 390},
		{Index: 1, Start: 500, Count: 500, Hits: 395},
		{Index: 2, Start: 1000, Count: 0},
	}

	run := Aggregate(MonteCarlo{}, plan, partials, math.Pi)

	assert.Equal(t, "montecarlo", run.Method)
	assert.Equal(t, uint64(1000), run.TotalUnits)
	assert.Equal(t, 2, run.WorkerCount)
	assert.Equal(t, uint64(82), run.Seed)
	assert.InDelta(t, 3.14, run.Estimate, 1e-15)
	require.NotNil(t, run.Exact)
	assert.Zero(t, run.Exact.Cmp(big.NewRat(157, 50)))
	assert.InDelta(t, RelativeError(3.14, math.Pi), run.RelativeError, 1e-12)
	assert.Greater(t, run.StdError, 0.0)
	// Local estimates 3.12 and 3.16, each weighted by 500 trials.
	assert.InDelta(t, math.Sqrt(0.4/999), run.ChunkSpread, 1e-9)
}

func TestAggregate_Simpson(t *testing.T) {
	t.Parallel()
	const n = 10_000
	plan, err := Partition(n, 3, Params{Total: n})
	require.NoError(t, err)
	partials := make([]PartialResult, 0, 4)
	for _, u := range plan.Units() {
		partials = append(partials, Simpson{}.Sample(u))
	}

	run := Aggregate(Simpson{}, plan, partials, math.Pi)

	assert.Nil(t, run.Exact)
	assert.Zero(t, run.StdError)
	assert.Less(t, math.Abs(run.Estimate-math.Pi), 1e-6)
}

func TestAggregate_SingleChunkHasNoSpread(t *testing.T) {
	t.Parallel()
	plan, err := Partition(100, 1, Params{Total: 100})
	require.NoError(t, err)
	run := Aggregate(MonteCarlo{}, plan, []PartialResult{{Count: 100, Hits: 78}, {Index: 1, Start: 100}}, math.Pi)
	assert.Zero(t, run.ChunkSpread)
}

// TestAggregate_OrderIndependence verifies that shuffling the partial results
// leaves integer hit totals unchanged and real sums equal within rounding.
func TestAggregate_OrderIndependence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	shuffled := func(partials []PartialResult, seed uint64) []PartialResult {
		out := append([]PartialResult(nil), partials...)
		r := rand.New(rand.NewPCG(seed, 0))
		r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}

	properties.Property("hit totals are exact under any order", prop.ForAll(
		func(hits []uint64, seed uint64) bool {
			partials := make([]PartialResult, len(hits))
			var total uint64
			for i, h := range hits {
				partials[i] = PartialResult{Index: i, Count: h + 1, Hits: h}
				total += h + 1
			}
			plan := Plan{Total: total}
			a := Aggregate(MonteCarlo{}, plan, partials, math.Pi)
			b := Aggregate(MonteCarlo{}, plan, shuffled(partials, seed), math.Pi)
			return a.Estimate == b.Estimate && a.Exact.Cmp(b.Exact) == 0
		},
		gen.SliceOf(gen.UInt64Range(0, 1_000_000)),
		gen.UInt64(),
	))

	properties.Property("weighted sums agree within rounding under any order", prop.ForAll(
		func(sums []float64, seed uint64) bool {
			partials := make([]PartialResult, len(sums))
			for i, s := range sums {
				partials[i] = PartialResult{Index: i, Count: 1, Sum: s}
			}
			plan := Plan{Total: uint64(len(sums)) + 1}
			a := Aggregate(Simpson{}, plan, partials, math.Pi)
			b := Aggregate(Simpson{}, plan, shuffled(partials, seed), math.Pi)
			return math.Abs(a.Estimate-b.Estimate) <= 1e-9*math.Max(1, math.Abs(a.Estimate))
		},
		gen.SliceOf(gen.Float64Range(0, 4)),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
