package orchestration

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/estimation"
	"github.com/agbru/picalc/internal/logging"
)

// DispatchOptions carries the optional collaborators of Dispatch.
type DispatchOptions struct {
	// Progress receives one update per completed unit. It must be buffered
	// for at least len(plan.Units()) updates or drained concurrently.
	Progress chan<- ProgressUpdate
	// Logger records chunk boundaries and faults. Nil disables logging.
	Logger logging.Logger
}

// Dispatch runs the pool chunks of plan concurrently on at most poolSize
// goroutines, waits for all of them, then processes the remainder on the
// calling goroutine.
//
// The returned slice holds len(plan.Chunks)+1 partial results ordered by unit
// index; the last one is the remainder and may be empty. Each goroutine writes
// only its own slot, so no lock is taken on the hot path.
//
// A panic inside a sampler aborts the run: Dispatch returns an
// apperrors.WorkerFaultError and no partial results. There is no retry.
func Dispatch(ctx context.Context, m estimation.Method, plan estimation.Plan, poolSize int, opts DispatchOptions) ([]estimation.PartialResult, error) {
	if poolSize < 1 {
		return nil, apperrors.ValidationError{Field: "pool size", Message: "must be at least 1"}
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}

	partials := make([]estimation.PartialResult, len(plan.Chunks)+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(poolSize)
	for _, unit := range plan.Chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := sampleUnit(m, unit)
			if err != nil {
				return err
			}
			partials[unit.Index] = p
			report(opts.Progress, p)
			log.Debug("chunk done",
				logging.Int("chunk", unit.Index),
				logging.Uint64("units", unit.Count),
				logging.Duration("elapsed", p.Elapsed))
			return nil
		})
	}
	// Barrier: the remainder never starts before every pool chunk is done.
	if err := g.Wait(); err != nil {
		log.Error("dispatch aborted", err, logging.String("method", m.Name()))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rem, err := sampleUnit(m, plan.Remainder)
	if err != nil {
		log.Error("remainder aborted", err, logging.String("method", m.Name()))
		return nil, err
	}
	partials[len(plan.Chunks)] = rem
	report(opts.Progress, rem)
	log.Debug("remainder done",
		logging.Uint64("units", plan.Remainder.Count),
		logging.Duration("elapsed", rem.Elapsed))

	return partials, nil
}

// sampleUnit runs the sampler on one unit and turns a panic into a
// WorkerFaultError.
func sampleUnit(m estimation.Method, unit estimation.WorkUnit) (p estimation.PartialResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.WorkerFaultError{
				Chunk: unit.Index,
				Start: unit.Start,
				Count: unit.Count,
				Cause: fmt.Errorf("panic: %v", r),
			}
		}
	}()
	return m.Sample(unit), nil
}

func report(ch chan<- ProgressUpdate, p estimation.PartialResult) {
	if ch == nil {
		return
	}
	ch <- ProgressUpdate{Chunk: p.Index, Units: p.Count, Elapsed: p.Elapsed}
}
