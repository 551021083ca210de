package estimation

import (
	"math"
	"time"
)

// DefaultSampleUnits is the number of units timed by the runtime estimator.
// It is independent of the size of the real run.
const DefaultSampleUnits = 10_000

// probeIndex keeps the timing sample on a stream no real unit uses.
const probeIndex = -1

// RuntimeEstimator projects the wall-clock duration of a run from a short
// timed sample of the method.
type RuntimeEstimator struct {
	// SampleUnits is the number of units timed. Zero means DefaultSampleUnits.
	SampleUnits uint64
	// Now is the clock. Nil means time.Now.
	Now func() time.Time
}

// Project times the method on a throwaway unit and scales the per-unit cost
// by largestChunk. The result is advisory: when the measurement is zero,
// negative or overflows, or when the method panics, the projection is
// returned with Available set to false.
func (e RuntimeEstimator) Project(m Method, params Params, largestChunk uint64) (p Projection) {
	units := e.SampleUnits
	if units == 0 {
		units = DefaultSampleUnits
	}
	now := e.Now
	if now == nil {
		now = time.Now
	}
	p = Projection{SampleUnits: units, LargestChunk: largestChunk}

	defer func() {
		if r := recover(); r != nil {
			p = Projection{SampleUnits: units, LargestChunk: largestChunk}
		}
	}()

	probe := WorkUnit{Index: probeIndex, Start: 0, Count: units, Params: params}
	start := now()
	m.Sample(probe)
	elapsed := now().Sub(start)
	p.SampleElapsed = elapsed
	if elapsed <= 0 {
		return p
	}

	p.PerUnit = elapsed.Seconds() / float64(units)
	projected := p.PerUnit * float64(largestChunk) * float64(time.Second)
	if math.IsNaN(projected) || math.IsInf(projected, 0) || projected >= math.MaxInt64 {
		return p
	}
	p.Projected = time.Duration(projected)
	p.Available = true
	return p
}
