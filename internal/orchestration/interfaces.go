package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/picalc/internal/estimation"
)

// ProgressUpdate is sent once per completed unit of work.
type ProgressUpdate struct {
	// Chunk is the index of the completed unit. The remainder carries the
	// index equal to the pool size.
	Chunk int
	// Units is the number of trials or subintervals the unit covered.
	Units uint64
	// Elapsed is the time the unit took.
	Elapsed time.Duration
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// Precision is the number of digits after the decimal point.
	Precision int
	Verbose   bool
	Details   bool
}

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the orchestration layer from the presentation layer.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving one update per completed unit.
	//   - totalUnits: The total number of units of the run.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, totalUnits uint64, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, totalUnits uint64, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, totalUnits uint64, out io.Writer) {
	f(wg, progressChan, totalUnits, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ uint64, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting estimation results.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per method of a comparison.
	PresentComparisonTable(runs []estimation.EstimationRun, opts PresentationOptions, out io.Writer)

	// PresentResult displays the outcome of a single run.
	PresentResult(run estimation.EstimationRun, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}
