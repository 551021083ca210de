package orchestration

import (
	"bytes"
	"context"
	"io"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/estimation"
	"github.com/agbru/picalc/internal/logging"
	"github.com/agbru/picalc/internal/metrics"
)

// TestPipeline_SingleWorkerMatchesSequentialLoop checks that a one-worker
// run is bit-for-bit the single-loop computation on the same stream.
func TestPipeline_SingleWorkerMatchesSequentialLoop(t *testing.T) {
	t.Parallel()
	const n = 10_000
	p := &Pipeline{}

	run, err := p.Run(context.Background(), estimation.MonteCarlo{}, RunConfig{N: n, PoolSize: 1, Seed: 82})
	require.NoError(t, err)

	hits := estimation.CountInside(estimation.NewStream(82, 0), n, 0, nil)
	want := 4 * (float64(hits) / n)
	assert.Equal(t, want, run.Estimate)
	assert.Equal(t, 1, run.WorkerCount)
	assert.Len(t, run.Partials, 2)
}

func TestPipeline_MonteCarloFourWorkers(t *testing.T) {
	t.Parallel()
	p := &Pipeline{}

	run, err := p.Run(context.Background(), estimation.MonteCarlo{}, RunConfig{N: 1_000_000, PoolSize: 4, Seed: 82})
	require.NoError(t, err)

	assert.Less(t, run.RelativeError, 1.0)
	assert.Equal(t, math.Pi, run.Reference)
	assert.Len(t, run.Partials, 5)
	require.NotNil(t, run.Exact)
	exact, _ := run.Exact.Float64()
	assert.Equal(t, run.Estimate, exact)
}

func TestPipeline_SimpsonSingleWorker(t *testing.T) {
	t.Parallel()
	p := &Pipeline{}

	run, err := p.Run(context.Background(), estimation.Simpson{}, RunConfig{N: 100_000, PoolSize: 1})
	require.NoError(t, err)

	assert.Less(t, run.RelativeError, 1e-6)
	assert.Nil(t, run.Exact)
}

func TestPipeline_SimpsonIndependentOfPoolSize(t *testing.T) {
	t.Parallel()
	p := &Pipeline{}
	base, err := p.Run(context.Background(), estimation.Simpson{}, RunConfig{N: 50_001, PoolSize: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(50_002), base.TotalUnits, "odd N must be rounded up to even")

	for _, w := range []int{2, 5, 8} {
		run, err := p.Run(context.Background(), estimation.Simpson{}, RunConfig{N: 50_001, PoolSize: w})
		require.NoError(t, err)
		assert.InDelta(t, base.Estimate, run.Estimate, 1e-12, "pool size %d", w)
	}
}

func TestPipeline_DeterministicUnderFixedSeed(t *testing.T) {
	t.Parallel()
	p := &Pipeline{}
	cfg := RunConfig{N: 200_003, PoolSize: 4, Seed: 1234}

	a, err := p.Run(context.Background(), estimation.MonteCarlo{}, cfg)
	require.NoError(t, err)
	b, err := p.Run(context.Background(), estimation.MonteCarlo{}, cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Estimate, b.Estimate)
	for i := range a.Partials {
		assert.Equal(t, a.Partials[i].Hits, b.Partials[i].Hits, "chunk %d", i)
	}
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPipeline_ProjectionBeforeDispatch(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	var events []string
	record := func(e string) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	}

	p := &Pipeline{
		Estimator:    estimation.RuntimeEstimator{SampleUnits: 100},
		OnProjection: func(string, estimation.Projection) { record("projection") },
		Progress: ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan ProgressUpdate, _ uint64, _ io.Writer) {
			defer wg.Done()
			for range ch {
				record("unit")
			}
		}),
		NewRunID: func() string { return "run-1" },
	}

	run, err := p.Run(context.Background(), estimation.Simpson{}, RunConfig{N: 1000, PoolSize: 2})
	require.NoError(t, err)

	assert.Equal(t, "run-1", run.ID)
	require.Len(t, events, 4)
	assert.Equal(t, "projection", events[0])
	assert.Equal(t, uint64(100), run.Projection.SampleUnits)
}

func TestPipeline_WorkerFaultAbortsRun(t *testing.T) {
	t.Parallel()
	var logBuf bytes.Buffer
	collector := metrics.NewCollector()
	p := &Pipeline{
		Logger:  logging.NewLogger(&logBuf, "pipeline").WithLevel(zerolog.InfoLevel),
		Metrics: collector,
	}

	run, err := p.Run(context.Background(), stubMethod{behavior: "panic_first"}, RunConfig{N: 100, PoolSize: 2})

	require.Error(t, err)
	assert.Zero(t, run.Estimate)
	assert.Nil(t, run.Partials)

	var estErr apperrors.EstimationError
	require.ErrorAs(t, err, &estErr)
	assert.Equal(t, "stub", estErr.Method)
	var fault apperrors.WorkerFaultError
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, 0, fault.Chunk)
	assert.Equal(t, apperrors.ExitErrorWorkerFault, apperrors.ExitCodeFor(err))

	assert.Contains(t, logBuf.String(), "run aborted")

	var text strings.Builder
	require.NoError(t, collector.WriteText(&text))
	assert.Contains(t, text.String(), `picalc_runs_total{method="stub",status="fault"} 1`)
}

func TestPipeline_RecordsMetrics(t *testing.T) {
	t.Parallel()
	collector := metrics.NewCollector()
	p := &Pipeline{Metrics: collector}

	_, err := p.Run(context.Background(), estimation.MonteCarlo{}, RunConfig{N: 10_000, PoolSize: 2, Seed: 5})
	require.NoError(t, err)

	var text strings.Builder
	require.NoError(t, collector.WriteText(&text))
	out := text.String()
	assert.Contains(t, out, `picalc_runs_total{method="montecarlo",status="success"} 1`)
	assert.Contains(t, out, `picalc_units_total{method="montecarlo"} 10000`)
}

func TestPipeline_InvalidPoolSize(t *testing.T) {
	t.Parallel()
	p := &Pipeline{}
	_, err := p.Run(context.Background(), estimation.MonteCarlo{}, RunConfig{N: 10, PoolSize: 0})
	assert.Equal(t, apperrors.ExitErrorConfig, apperrors.ExitCodeFor(err))
}
