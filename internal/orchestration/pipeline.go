package orchestration

import (
	"context"
	"io"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/estimation"
	"github.com/agbru/picalc/internal/logging"
	"github.com/agbru/picalc/internal/metrics"
	"github.com/agbru/picalc/internal/telemetry"
)

// RunConfig holds the resolved parameters of one run.
type RunConfig struct {
	// N is the requested number of trials or subintervals.
	N uint64
	// PoolSize is the number of pool workers, already capped by the
	// available hardware concurrency.
	PoolSize int
	// Seed is the global seed.
	Seed uint64
	// Reseed is the re-seed cadence in trials. Zero disables re-seeding.
	Reseed uint64
}

// Pipeline runs the stages of an estimation in order: partition, project,
// dispatch, aggregate. The zero value is usable and runs silently.
type Pipeline struct {
	// Estimator projects the runtime before dispatch.
	Estimator estimation.RuntimeEstimator
	// Progress displays unit completion. Nil means NullProgressReporter.
	Progress ProgressReporter
	// ProgressOut is the writer handed to Progress.
	ProgressOut io.Writer
	// OnProjection, when set, is called with the method name and its
	// projection before any chunk is dispatched.
	OnProjection func(method string, p estimation.Projection)
	Logger       logging.Logger
	Metrics      *metrics.Collector
	// NewRunID generates run identifiers. Nil means a random UUID.
	NewRunID func() string
}

// Run executes one estimation of method m.
//
// A worker fault aborts the run: the error is an apperrors.EstimationError
// wrapping the apperrors.WorkerFaultError, and no estimate is returned.
func (p *Pipeline) Run(ctx context.Context, m estimation.Method, cfg RunConfig) (estimation.EstimationRun, error) {
	runID := p.newRunID()
	total := m.Units(cfg.N)
	ctx, span := telemetry.StartStage(ctx, "run", telemetry.RunAttributes(runID, m.Name(), total, cfg.PoolSize)...)
	run, err := p.run(ctx, runID, m, total, cfg)
	telemetry.EndStage(span, err)
	return run, err
}

func (p *Pipeline) run(ctx context.Context, runID string, m estimation.Method, total uint64, cfg RunConfig) (estimation.EstimationRun, error) {
	log := p.logger()
	params := estimation.Params{Total: total, Seed: cfg.Seed, Reseed: cfg.Reseed}

	_, span := telemetry.StartStage(ctx, "partition")
	plan, err := estimation.Partition(total, cfg.PoolSize, params)
	telemetry.EndStage(span, err)
	if err != nil {
		return estimation.EstimationRun{}, apperrors.EstimationError{Method: m.Name(), Cause: err}
	}
	log.Debug("partitioned",
		logging.String("run_id", runID),
		logging.Uint64("units", total),
		logging.Int("chunks", len(plan.Chunks)),
		logging.Uint64("chunk_size", plan.ChunkSize()),
		logging.Uint64("remainder", plan.Remainder.Count))

	_, span = telemetry.StartStage(ctx, "project")
	projection := p.Estimator.Project(m, params, plan.LargestChunk())
	telemetry.EndStage(span, nil)
	if !projection.Available {
		log.Warn("runtime projection unavailable", logging.String("run_id", runID))
	} else {
		log.Debug("projected",
			logging.String("run_id", runID),
			logging.Duration("projected", projection.Projected))
	}
	if p.OnProjection != nil {
		p.OnProjection(m.Name(), projection)
	}

	dctx, span := telemetry.StartStage(ctx, "dispatch")
	start := time.Now()
	partials, err := p.dispatch(dctx, m, plan, cfg.PoolSize, log)
	elapsed := time.Since(start)
	telemetry.EndStage(span, err)
	if err != nil {
		p.Metrics.ObserveFault(m.Name())
		log.Error("run aborted", err, logging.String("run_id", runID), logging.String("method", m.Name()))
		return estimation.EstimationRun{}, apperrors.EstimationError{Method: m.Name(), Cause: err}
	}
	for _, part := range partials {
		if part.Count > 0 {
			p.Metrics.ObserveChunk(m.Name(), part.Count, part.Elapsed)
		}
	}

	_, span = telemetry.StartStage(ctx, "aggregate")
	run := estimation.Aggregate(m, plan, partials, math.Pi)
	telemetry.EndStage(span, nil)
	run.ID = runID
	run.Duration = elapsed
	run.Projection = projection

	p.Metrics.ObserveRun(m.Name(), run.Duration, run.RelativeError)
	log.Info("run complete",
		logging.String("run_id", runID),
		logging.String("method", m.Name()),
		logging.Float64("estimate", run.Estimate),
		logging.Float64("relative_error_pct", run.RelativeError),
		logging.Duration("duration", run.Duration))
	return run, nil
}

// dispatch runs Dispatch with the progress reporter attached. The channel
// holds one slot per unit, so workers never block on a slow display.
func (p *Pipeline) dispatch(ctx context.Context, m estimation.Method, plan estimation.Plan, poolSize int, log logging.Logger) ([]estimation.PartialResult, error) {
	reporter := p.Progress
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	out := p.ProgressOut
	if out == nil {
		out = io.Discard
	}

	progressChan := make(chan ProgressUpdate, len(plan.Chunks)+1)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, plan.Total, out)

	partials, err := Dispatch(ctx, m, plan, poolSize, DispatchOptions{Progress: progressChan, Logger: log})
	close(progressChan)
	displayWg.Wait()
	return partials, err
}

func (p *Pipeline) logger() logging.Logger {
	if p.Logger == nil {
		return logging.NewNopLogger()
	}
	return p.Logger
}

func (p *Pipeline) newRunID() string {
	if p.NewRunID != nil {
		return p.NewRunID()
	}
	return uuid.NewString()
}
