// Package calibration measures the estimation pipeline at several pool sizes
// and persists the fastest one as a per-machine profile.
package calibration

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/picalc/internal/estimation"
	"github.com/agbru/picalc/internal/logging"
	"github.com/agbru/picalc/internal/metrics"
	"github.com/agbru/picalc/internal/orchestration"
)

// DefaultCalibrationN is the run size used for each measurement.
const DefaultCalibrationN = 2_000_000

// calibrationSampleUnits keeps the runtime projection of each measurement
// negligible next to the run itself.
const calibrationSampleUnits = 1_000

// Options configures a calibration sweep.
type Options struct {
	// N is the run size of each measurement. Zero means DefaultCalibrationN.
	N uint64
	// Seed is the global seed shared by every measurement.
	Seed uint64
	// Methods are measured in turn at every pool size.
	Methods []estimation.Method
	// WorkerCounts are the pool sizes to sweep.
	WorkerCounts []int
	Logger       logging.Logger
	Metrics      *metrics.Collector
}

// Measurement is the timing of one pool size, summed over methods.
type Measurement struct {
	Workers  int
	Duration time.Duration
	Err      error
}

// Sweep runs every method at every pool size and returns one result per
// pool size, in the order of opts.WorkerCounts. A failed run marks its pool
// size as failed and the sweep continues; a cancelled context stops it.
func Sweep(ctx context.Context, opts Options) ([]Measurement, error) {
	if len(opts.Methods) == 0 || len(opts.WorkerCounts) == 0 {
		return nil, fmt.Errorf("calibration needs at least one method and one pool size")
	}
	n := opts.N
	if n == 0 {
		n = DefaultCalibrationN
	}
	p := &orchestration.Pipeline{
		Estimator: estimation.RuntimeEstimator{SampleUnits: calibrationSampleUnits},
		Logger:    opts.Logger,
		Metrics:   opts.Metrics,
	}

	results := make([]Measurement, 0, len(opts.WorkerCounts))
	for _, workers := range opts.WorkerCounts {
		res := Measurement{Workers: workers}
		for _, m := range opts.Methods {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			run, err := p.Run(ctx, m, orchestration.RunConfig{N: n, PoolSize: workers, Seed: opts.Seed})
			if err != nil {
				res.Err = err
				break
			}
			res.Duration += run.Duration
		}
		results = append(results, res)
	}
	return results, nil
}

// bestWorkers returns the pool size with the lowest duration among the
// successful results, preferring the smaller pool on a tie. ok is false when
// every result failed.
func bestWorkers(results []Measurement) (workers int, ok bool) {
	var best time.Duration
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if !ok || r.Duration < best || (r.Duration == best && r.Workers < workers) {
			workers, best, ok = r.Workers, r.Duration, true
		}
	}
	return workers, ok
}

// RunCalibration sweeps the pool sizes, prints the summary table to out and
// returns a profile holding the fastest pool size.
func RunCalibration(ctx context.Context, opts Options, out io.Writer) (*CalibrationProfile, error) {
	fmt.Fprintf(out, "--- Calibration Mode: sweeping %d pool sizes ---\n", len(opts.WorkerCounts))
	start := time.Now()
	results, err := Sweep(ctx, opts)
	if err != nil {
		return nil, err
	}
	best, ok := bestWorkers(results)
	printCalibrationResults(out, results, best)
	if !ok {
		return nil, fmt.Errorf("calibration failed: no pool size completed")
	}

	profile := NewProfile()
	profile.OptimalWorkers = best
	profile.CalibrationN = opts.N
	if profile.CalibrationN == 0 {
		profile.CalibrationN = DefaultCalibrationN
	}
	profile.CalibrationTime = time.Since(start).Round(time.Millisecond).String()
	printCalibrationOutput(profile, out)
	return profile, nil
}
