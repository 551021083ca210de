package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/picalc/internal/calibration"
	"github.com/agbru/picalc/internal/cli"
	"github.com/agbru/picalc/internal/config"
	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/estimation"
	"github.com/agbru/picalc/internal/logging"
	"github.com/agbru/picalc/internal/metrics"
	"github.com/agbru/picalc/internal/orchestration"
	"github.com/agbru/picalc/internal/ui"
)

// ProfileMaxAge is the age beyond which a calibration profile is ignored.
const ProfileMaxAge = 30 * 24 * time.Hour

// runEstimate runs the selected methods and presents their results.
func (a *Application) runEstimate(ctx context.Context, out io.Writer) int {
	methods, err := a.Registry.Select(a.Config.Method)
	if err != nil {
		return apperrors.HandleEstimationError(apperrors.ConfigError{Message: err.Error()}, a.ErrWriter)
	}

	log := a.newLogger()
	poolSize := a.resolvePoolSize(log)
	seed := a.resolveSeed()

	var collector *metrics.Collector
	if a.Config.Metrics {
		collector = metrics.NewCollector()
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, poolSize, seed, out)
		cli.PrintExecutionMode(methods, out)
	}

	pipeline := a.newPipeline(out, log, collector)
	runCfg := orchestration.RunConfig{
		N:        a.Config.N,
		PoolSize: poolSize,
		Seed:     seed,
		Reseed:   a.Config.Reseed,
	}
	results := orchestration.ExecuteMethods(ctx, pipeline, methods, runCfg)

	code := a.analyzeResults(results, out)
	if collector != nil {
		if err := collector.WriteText(a.ErrWriter); err != nil {
			log.Error("writing metrics", err)
		}
	}
	return code
}

// newPipeline wires the pipeline collaborators. Quiet mode drops the
// progress display and the projection line.
func (a *Application) newPipeline(out io.Writer, log logging.Logger, collector *metrics.Collector) *orchestration.Pipeline {
	p := &orchestration.Pipeline{
		Estimator:   estimation.RuntimeEstimator{SampleUnits: a.Config.SampleUnits},
		Progress:    orchestration.NullProgressReporter{},
		ProgressOut: io.Discard,
		Logger:      log,
		Metrics:     collector,
	}
	if !a.Config.Quiet {
		p.Progress = cli.CLIProgressReporter{}
		p.ProgressOut = out
		p.OnProjection = func(method string, proj estimation.Projection) {
			cli.PrintProjection(method, proj, out)
		}
	}
	return p
}

// resolvePoolSize caps the configured worker count by the available CPUs.
// Without an explicit count, a valid calibration profile supplies it.
func (a *Application) resolvePoolSize(log logging.Logger) int {
	if a.Config.Workers == 0 && a.Config.Profile != "" {
		if profile, ok := calibration.LoadValidProfile(a.Config.Profile, ProfileMaxAge); ok {
			log.Info("using calibrated pool size",
				logging.String("profile", a.Config.Profile),
				logging.Int("workers", profile.OptimalWorkers))
			return config.ResolveWorkers(profile.OptimalWorkers)
		}
		log.Warn("calibration profile ignored", logging.String("profile", a.Config.Profile))
	}
	return config.ResolveWorkers(a.Config.Workers)
}

// resolveSeed returns the configured seed, or one drawn from the OS entropy
// source when the seed is random.
func (a *Application) resolveSeed() uint64 {
	if a.Config.RandomSeed() {
		return estimation.DrawSeed()
	}
	return uint64(a.Config.Seed)
}

func (a *Application) presentationOptions() orchestration.PresentationOptions {
	return orchestration.PresentationOptions{
		Precision: a.Config.Precision,
		Verbose:   a.Config.Verbose,
		Details:   a.Config.Details,
	}
}

// analyzeResults presents the results and returns the exit code. A single
// method prints its result block; several methods print the comparison.
func (a *Application) analyzeResults(results []orchestration.MethodResult, out io.Writer) int {
	opts := a.presentationOptions()
	outputCfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: a.Config.Quiet}
	presenter := cli.CLIResultPresenter{}

	if len(results) == 1 || a.Config.Quiet {
		for _, r := range results {
			if r.Err != nil {
				errOut := out
				if a.Config.Quiet {
					errOut = a.ErrWriter
				}
				return presenter.HandleError(r.Err, errOut)
			}
		}
		best := findBestResult(results)
		if err := cli.DisplayResultWithConfig(out, best.Run, opts, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	exitCode := orchestration.AnalyzeComparisonResults(results, opts, presenter, presenter, out)
	if exitCode == apperrors.ExitSuccess && outputCfg.OutputFile != "" {
		best := findBestResult(results)
		if err := cli.WriteResultToFile(best.Run, opts.Precision, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
	}
	return exitCode
}

// findBestResult returns the successful result with the lowest relative
// error, or nil when every method failed.
func findBestResult(results []orchestration.MethodResult) *orchestration.MethodResult {
	var best *orchestration.MethodResult
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if best == nil || results[i].Run.RelativeError < best.Run.RelativeError {
			best = &results[i]
		}
	}
	return best
}

// runCalibration sweeps pool sizes, prints the summary and saves the
// resulting profile.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	methods, err := a.Registry.Select(a.Config.Method)
	if err != nil {
		return apperrors.HandleEstimationError(apperrors.ConfigError{Message: err.Error()}, a.ErrWriter)
	}
	log := a.newLogger()

	profile, err := calibration.RunCalibration(ctx, calibration.Options{
		N:            a.Config.N,
		Seed:         a.resolveSeed(),
		Methods:      methods,
		WorkerCounts: a.calibrationWorkerCounts(),
		Logger:       log,
	}, out)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", apperrors.WrapError(err, "calibration failed"))
		return apperrors.ExitErrorGeneric
	}

	path := a.Config.Profile
	if path == "" {
		path = calibration.GetDefaultProfilePath()
	}
	if err := profile.SaveProfile(path); err != nil {
		err = apperrors.WrapError(err, "saving calibration profile to %s", path)
		log.Error("calibration profile not saved", err)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	fmt.Fprintf(out, "%s✓ Profile saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
	return apperrors.ExitSuccess
}

// calibrationWorkerCounts returns the pool sizes to sweep: the full
// power-of-two ladder, or three sizes with -calibrate-quick.
func (a *Application) calibrationWorkerCounts() []int {
	numCPU := config.ResolveWorkers(a.Config.Workers)
	if a.Config.CalibrateQuick {
		return calibration.GenerateQuickWorkerCounts(numCPU)
	}
	return calibration.GenerateWorkerCounts(numCPU)
}
