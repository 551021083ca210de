// Package cli renders the configuration banner, the live progress display
// and the results of the pi estimator on a terminal.
package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/picalc/internal/config"
	"github.com/agbru/picalc/internal/estimation"
	"github.com/agbru/picalc/internal/format"
	"github.com/agbru/picalc/internal/ui"
)

// PrintExecutionConfig displays the resolved execution configuration: the
// number of units, the pool size, the seed policy and the re-seed cadence.
//
// Parameters:
//   - cfg: The application configuration.
//   - poolSize: The resolved number of pool workers.
//   - seed: The global seed of the run.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, poolSize int, seed uint64, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Estimating %spi%s with N = %s%s%s units.\n",
		ui.ColorMagenta(), ui.ColorReset(), ui.ColorYellow(), format.FormatUint(cfg.N), ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s available CPUs, Go %s%s%s.\n",
		ui.ColorCyan(), config.AvailableCPUs(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())

	limit := "available CPUs"
	if cfg.Workers > 0 {
		limit = fmt.Sprintf("cap %d", cfg.Workers)
	}
	fmt.Fprintf(out, "Worker pool: %s%d%s workers (%s).\n", ui.ColorCyan(), poolSize, ui.ColorReset(), limit)

	source := "fixed"
	if cfg.RandomSeed() {
		source = "drawn from entropy"
	}
	fmt.Fprintf(out, "Seed: %s%d%s (%s).", ui.ColorCyan(), seed, ui.ColorReset(), source)
	if cfg.Reseed > 0 {
		fmt.Fprintf(out, " Re-seed every %s trials.\n", format.FormatUint(cfg.Reseed))
	} else {
		fmt.Fprintf(out, " Re-seeding disabled.\n")
	}
}

// PrintExecutionMode displays the execution mode (single method vs comparison).
func PrintExecutionMode(methods []estimation.Method, out io.Writer) {
	var modeDesc string
	if len(methods) > 1 {
		modeDesc = "Sequential comparison of all methods"
	} else {
		modeDesc = fmt.Sprintf("Single estimation with the %s%s%s method",
			ui.ColorGreen(), methods[0].Description(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// PrintProjection displays the advisory runtime projection of a run, or
// "unavailable" when the timing sample could not produce one.
func PrintProjection(method string, p estimation.Projection, out io.Writer) {
	if !p.Available {
		fmt.Fprintf(out, "Projected duration (%s): %sunavailable%s.\n", method, ui.ColorYellow(), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "Projected duration (%s): %s%s%s (%s units timed in %s, largest chunk %s).\n",
		method, ui.ColorYellow(), format.FormatExecutionDuration(p.Projected), ui.ColorReset(),
		format.FormatUint(p.SampleUnits), format.FormatExecutionDuration(p.SampleElapsed),
		format.FormatUint(p.LargestChunk))
}
