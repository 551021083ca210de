package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/estimation"
	"github.com/agbru/picalc/internal/metrics"
	"github.com/agbru/picalc/internal/orchestration"
	"github.com/agbru/picalc/internal/sysmon"
	"github.com/agbru/picalc/internal/ui"
)

func TestPresentComparisonTable(t *testing.T) {
	ui.InitTheme(true)
	runs := []estimation.EstimationRun{
		{Method: "simpson", Estimate: 3.14159265, RelativeError: 1e-7, Duration: 2 * time.Millisecond},
		{Method: "montecarlo", Estimate: 3.1412, RelativeError: 0.0125, Duration: 40 * time.Millisecond},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(runs, orchestration.PresentationOptions{Precision: 4}, &buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	assert.Equal(t, "--- Comparison Summary ---", lines[0])
	assert.Contains(t, lines[1], "Method")
	assert.Contains(t, lines[1], "Rel. error")
	assert.True(t, strings.HasPrefix(lines[2], "simpson"))
	assert.Contains(t, lines[2], "3.1416")
	assert.True(t, strings.HasPrefix(lines[3], "montecarlo"))
	// Columns line up: the estimate starts at the same offset on each row.
	assert.Equal(t, strings.Index(lines[2], "3.14"), strings.Index(lines[3], "3.14"))
}

func TestPadRight(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", padRight("ab", 3))
	assert.Equal(t, "ab", padRight("ab", 0))
	assert.Equal(t, "ab", padRight("ab", -2))
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil", nil, apperrors.ExitSuccess, ""},
		{
			"worker fault",
			apperrors.EstimationError{Method: "montecarlo", Cause: apperrors.WorkerFaultError{Chunk: 1, Cause: errors.New("panic: boom")}},
			apperrors.ExitErrorWorkerFault,
			"worker fault",
		},
		{"config", apperrors.NewConfigError("bad flag"), apperrors.ExitErrorConfig, "Invalid configuration"},
		{"generic", errors.New("disk full"), apperrors.ExitErrorGeneric, "disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := CLIResultPresenter{}.HandleError(tt.err, &buf)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, buf.String(), tt.wantOut)
		})
	}
}

func TestDisplaySystemStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplaySystemStats(
		metrics.MemorySnapshot{HeapAlloc: 123456, NumGC: 3, PauseTotalNs: 2_500_000, Goroutines: 9},
		sysmon.Stats{CPUPercent: 12.5, MemPercent: 40, LogicalCPUs: 8},
		&buf)
	out := buf.String()
	for _, want := range []string{"123,456 bytes", "GC cycles:       3", "2.50ms", "Goroutines:      9", "12.5% of 8 logical CPUs", "40.0%"} {
		assert.Contains(t, out, want)
	}
}
