// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* and Render* functions return a string without performing I/O.
//     Examples: [FormatQuietResult], [RenderSummary].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/picalc/internal/estimation"
	"github.com/agbru/picalc/internal/format"
	"github.com/agbru/picalc/internal/metrics"
	"github.com/agbru/picalc/internal/orchestration"
	"github.com/agbru/picalc/internal/sysmon"
	"github.com/agbru/picalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode prints the estimate only.
	Quiet bool
}

// RenderSummary renders the estimate and its relative error in a bordered
// lipgloss panel.
func RenderSummary(run estimation.EstimationRun, precision int) string {
	pt := ui.GetPanelTheme()
	title := lipgloss.NewStyle().Bold(true).Foreground(pt.Title)
	value := lipgloss.NewStyle().Foreground(pt.Value)
	dim := lipgloss.NewStyle().Foreground(pt.Dim)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title.Render("π ≈ ")+value.Render(format.FormatFloat(run.Estimate, precision)),
		dim.Render(fmt.Sprintf("%s · relative error %s", run.Method, format.FormatPercent(run.RelativeError))),
	)
	return ui.PanelStyle().Render(body)
}

// DisplayResult prints the result block of a run. Verbose adds the exact
// estimate and run identifiers; Details adds statistics, the per-chunk table
// and system usage.
func DisplayResult(run estimation.EstimationRun, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n--- Results ---\n")
	fmt.Fprintln(out, RenderSummary(run, opts.Precision))

	fmt.Fprintf(out, "Method:            %s%s%s\n", ui.ColorBlue(), run.Method, ui.ColorReset())
	fmt.Fprintf(out, "Estimate:          %s%s%s\n", ui.ColorGreen(), format.FormatFloat(run.Estimate, opts.Precision), ui.ColorReset())
	fmt.Fprintf(out, "Reference (pi):    %s\n", format.FormatFloat(run.Reference, opts.Precision))
	fmt.Fprintf(out, "Relative error:    %s%s%s\n", ui.ColorYellow(), format.FormatPercent(run.RelativeError), ui.ColorReset())
	fmt.Fprintf(out, "Duration:          %s\n", format.FormatExecutionDuration(run.Duration))
	if run.Projection.Available {
		fmt.Fprintf(out, "Projected:         %s\n", format.FormatExecutionDuration(run.Projection.Projected))
	} else {
		fmt.Fprintf(out, "Projected:         unavailable\n")
	}

	if opts.Verbose {
		if run.Exact != nil {
			fmt.Fprintf(out, "Exact estimate:    %s\n", format.FormatRat(run.Exact, opts.Precision))
		}
		fmt.Fprintf(out, "Run ID:            %s\n", run.ID)
		fmt.Fprintf(out, "Seed:              %d\n", run.Seed)
	}

	if opts.Details {
		fmt.Fprintf(out, "\n--- Detailed analysis ---\n")
		fmt.Fprintf(out, "Units:             %s over %d workers + remainder\n", format.FormatUint(run.TotalUnits), run.WorkerCount)
		if run.StdError > 0 {
			fmt.Fprintf(out, "Standard error:    %s\n", strconv.FormatFloat(run.StdError, 'g', 6, 64))
		}
		if run.ChunkSpread > 0 {
			fmt.Fprintf(out, "Chunk spread:      %s\n", strconv.FormatFloat(run.ChunkSpread, 'g', 6, 64))
		}
		DisplayChunkTable(run, out)
		DisplaySystemStats(metrics.NewMemoryCollector().Snapshot(), sysmon.Sample(), out)
	}
}

// DisplayChunkTable prints one row per unit of work. Monte Carlo rows show
// hits; Simpson rows show the weighted partial sum.
func DisplayChunkTable(run estimation.EstimationRun, out io.Writer) {
	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	valueHeader := "Sum"
	if run.Exact != nil {
		valueHeader = "Hits"
	}
	fmt.Fprintf(tw, "Chunk\tRange\tUnits\t%s\tElapsed\n", valueHeader)
	for i, p := range run.Partials {
		label := strconv.Itoa(p.Index)
		if i == len(run.Partials)-1 {
			label = "rem"
		}
		value := strconv.FormatFloat(p.Sum, 'f', 6, 64)
		if run.Exact != nil {
			value = format.FormatUint(p.Hits)
		}
		fmt.Fprintf(tw, "%s\t[%d, %d)\t%s\t%s\t%s\n",
			label, p.Start, p.Start+p.Count, format.FormatUint(p.Count), value,
			format.FormatExecutionDuration(p.Elapsed))
	}
	tw.Flush()
}

// FormatQuietResult formats a result for quiet mode output: the estimate
// alone, suitable for scripting.
func FormatQuietResult(run estimation.EstimationRun, precision int) string {
	return format.FormatFloat(run.Estimate, precision)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, run estimation.EstimationRun, precision int) {
	fmt.Fprintln(out, FormatQuietResult(run, precision))
}

// WriteResultToFile writes a run report to the configured file.
//
// Returns an error if the file cannot be written.
func WriteResultToFile(run estimation.EstimationRun, precision int, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Pi Estimation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Run ID: %s\n", run.ID)
	fmt.Fprintf(file, "# Method: %s\n", run.Method)
	fmt.Fprintf(file, "# N: %d\n", run.TotalUnits)
	fmt.Fprintf(file, "# Workers: %d\n", run.WorkerCount)
	fmt.Fprintf(file, "# Seed: %d\n", run.Seed)
	fmt.Fprintf(file, "# Duration: %s\n", run.Duration)
	fmt.Fprintf(file, "# Relative error: %s\n", format.FormatPercent(run.RelativeError))
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "pi ~= %s\n", format.FormatFloat(run.Estimate, precision))
	if run.Exact != nil {
		fmt.Fprintf(file, "exact = %s\n", run.Exact.RatString())
	}

	return file.Close()
}

// DisplayResultWithConfig displays a result and, when configured, saves it to
// a file. This is a unified function that handles all output modes.
func DisplayResultWithConfig(out io.Writer, run estimation.EstimationRun, opts orchestration.PresentationOptions, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, run, opts.Precision)
	} else {
		DisplayResult(run, opts, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(run, opts.Precision, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
