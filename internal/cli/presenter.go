package cli

import (
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/estimation"
	"github.com/agbru/picalc/internal/format"
	"github.com/agbru/picalc/internal/metrics"
	"github.com/agbru/picalc/internal/orchestration"
	"github.com/agbru/picalc/internal/sysmon"
	"github.com/agbru/picalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar while a run executes.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, totalUnits uint64, out io.Writer) {
	DisplayProgress(wg, progressChan, totalUnits, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays one row per method with its estimate,
// relative error and duration. Uses manual padding to correctly handle ANSI
// color codes.
func (CLIResultPresenter) PresentComparisonTable(runs []estimation.EstimationRun, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	headers := []string{"Method", "Estimate", "Rel. error", "Duration"}
	rows := make([][]string, len(runs))
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for i, run := range runs {
		rows[i] = []string{
			run.Method,
			format.FormatFloat(run.Estimate, opts.Precision),
			format.FormatPercent(run.RelativeError),
			format.FormatExecutionDuration(run.Duration),
		}
		for j, cell := range rows[i] {
			widths[j] = max(widths[j], utf8.RuneCountInString(cell))
		}
	}

	for i, h := range headers {
		fmt.Fprintf(out, "%s%s%s%s   ", ui.ColorUnderline(), h, ui.ColorReset(), padRight("", widths[i]-len(h)))
	}
	fmt.Fprintln(out)

	colors := []func() string{ui.ColorBlue, ui.ColorGreen, ui.ColorYellow, ui.ColorCyan}
	for _, row := range rows {
		for j, cell := range row {
			fmt.Fprintf(out, "%s%s%s%s   ", colors[j](), cell, ui.ColorReset(), padRight("", widths[j]-utf8.RuneCountInString(cell)))
		}
		fmt.Fprintln(out)
	}
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the outcome of a single run.
func (CLIResultPresenter) PresentResult(run estimation.EstimationRun, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(run, opts, out)
}

// HandleError prints a failed run and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	return apperrors.HandleEstimationError(err, out)
}

// DisplaySystemStats shows process memory and system-wide usage after a run.
func DisplaySystemStats(mem metrics.MemorySnapshot, sys sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nSystem Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s bytes\n", format.FormatUint(mem.HeapAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", mem.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", mem.PauseTotalMillis())
	fmt.Fprintf(out, "  Goroutines:      %d\n", mem.Goroutines)
	fmt.Fprintf(out, "  System CPU:      %.1f%% of %d logical CPUs\n", sys.CPUPercent, sys.LogicalCPUs)
	fmt.Fprintf(out, "  System memory:   %.1f%%\n", sys.MemPercent)
}
