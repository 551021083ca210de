package orchestration

import (
	"time"
)

// ProgressAggregator turns per-unit completion updates into an overall
// fraction and an ETA. It is used by the CLI progress display.
type ProgressAggregator struct {
	totalUnits uint64
	doneUnits  uint64
	doneChunks int
	start      time.Time
	now        func() time.Time
}

// NewProgressAggregator creates an aggregator for a run of totalUnits units.
// Returns nil if totalUnits is zero.
func NewProgressAggregator(totalUnits uint64) *ProgressAggregator {
	return newProgressAggregator(totalUnits, time.Now)
}

func newProgressAggregator(totalUnits uint64, now func() time.Time) *ProgressAggregator {
	if totalUnits == 0 {
		return nil
	}
	return &ProgressAggregator{totalUnits: totalUnits, start: now(), now: now}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// Chunk is the index of the unit that sent the update.
	Chunk int
	// ChunksDone is the number of units completed so far.
	ChunksDone int
	// Fraction is the share of all units completed, from 0.0 to 1.0.
	Fraction float64
	// ETA is the estimated time remaining.
	ETA time.Duration
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	a.doneUnits += update.Units
	if a.doneUnits > a.totalUnits {
		a.doneUnits = a.totalUnits
	}
	a.doneChunks++
	return AggregatedProgress{
		Chunk:      update.Chunk,
		ChunksDone: a.doneChunks,
		Fraction:   a.Fraction(),
		ETA:        a.ETA(),
	}
}

// Fraction returns the share of units completed without updating.
func (a *ProgressAggregator) Fraction() float64 {
	return float64(a.doneUnits) / float64(a.totalUnits)
}

// ETA extrapolates the remaining time from the elapsed time and the
// completed fraction. It is zero until the first unit completes.
func (a *ProgressAggregator) ETA() time.Duration {
	f := a.Fraction()
	if f <= 0 || f >= 1 {
		return 0
	}
	elapsed := a.now().Sub(a.start)
	return time.Duration(float64(elapsed) * (1 - f) / f)
}

// TotalUnits returns the number of units being tracked.
func (a *ProgressAggregator) TotalUnits() uint64 {
	return a.totalUnits
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
