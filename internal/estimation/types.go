package estimation

import (
	"math/big"
	"time"
)

// Params carries the method parameters shared by every unit of a run.
type Params struct {
	// Total is the number of trials or subintervals of the whole run. The
	// Simpson sampler normalizes abscissas with it.
	Total uint64
	// Seed is the global seed. Each unit derives its own stream from it.
	Seed uint64
	// Reseed is the re-seed cadence in trials. Zero disables re-seeding.
	Reseed uint64
}

// WorkUnit is the half-open range [Start, Start+Count) of trial indices
// processed by exactly one worker.
type WorkUnit struct {
	// Index identifies the unit inside its plan. The remainder unit carries
	// the index equal to the number of pool chunks.
	Index  int
	Start  uint64
	Count  uint64
	Params Params
}

// End returns the exclusive upper bound of the unit's range.
func (u WorkUnit) End() uint64 { return u.Start + u.Count }

// PartialResult is the output of one WorkUnit. Monte Carlo fills Hits,
// Simpson fills Sum.
type PartialResult struct {
	Index   int
	Start   uint64
	Count   uint64
	Hits    uint64
	Sum     float64
	Elapsed time.Duration
}

// Projection is the advisory runtime estimate computed before dispatch.
type Projection struct {
	// SampleUnits is the number of units timed.
	SampleUnits uint64
	// SampleElapsed is the measured wall-clock time of the sample.
	SampleElapsed time.Duration
	// PerUnit is the measured cost of a single unit, in seconds.
	PerUnit float64
	// LargestChunk is the worst-case per-worker unit count used for the projection.
	LargestChunk uint64
	// Projected is the projected wall-clock duration of the full run.
	Projected time.Duration
	// Available is false when the measurement could not produce a
	// meaningful projection.
	Available bool
}

// EstimationRun is the whole-run aggregate. It is built once, after the last
// partial result has been collected.
type EstimationRun struct {
	ID          string
	Method      string
	TotalUnits  uint64
	WorkerCount int
	Seed        uint64
	Partials    []PartialResult
	Estimate    float64
	// Exact holds the exact rational estimate when the method has one.
	Exact         *big.Rat
	Reference     float64
	RelativeError float64
	// StdError is the one-sigma statistical error of a sampling method.
	StdError float64
	// ChunkSpread is the weighted standard deviation of per-chunk estimates.
	ChunkSpread float64
	Duration    time.Duration
	Projection  Projection
}
