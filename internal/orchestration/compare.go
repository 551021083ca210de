package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"

	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/estimation"
)

// MethodResult pairs a method name with the outcome of its run.
type MethodResult struct {
	Method string
	Run    estimation.EstimationRun
	Err    error
}

// ExecuteMethods runs each method in turn on the full pool. Methods never
// run concurrently with each other.
func ExecuteMethods(ctx context.Context, p *Pipeline, methods []estimation.Method, cfg RunConfig) []MethodResult {
	results := make([]MethodResult, len(methods))
	for i, m := range methods {
		run, err := p.Run(ctx, m, cfg)
		results[i] = MethodResult{Method: m.Name(), Run: run, Err: err}
	}
	return results
}

// AnalyzeComparisonResults sorts the results by accuracy, presents the
// comparison table and the most accurate estimate, and returns the exit code.
//
// Successful runs sort before failed ones. Any failed method makes the
// comparison fail with the exit code of its error.
func AnalyzeComparisonResults(results []MethodResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Run.RelativeError < results[j].Run.RelativeError
	})

	runs := make([]estimation.EstimationRun, 0, len(results))
	var firstError error
	for _, r := range results {
		if r.Err != nil {
			if firstError == nil {
				firstError = r.Err
			}
			continue
		}
		runs = append(runs, r.Run)
	}

	presenter.PresentComparisonTable(runs, opts, out)

	if len(runs) == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No method could complete the estimation.\n")
		if firstError == nil {
			return apperrors.ExitErrorGeneric
		}
		return errHandler.HandleError(firstError, out)
	}
	if firstError != nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. %d of %d methods failed.\n", len(results)-len(runs), len(results))
		return errHandler.HandleError(firstError, out)
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. Most accurate method: %s.\n", runs[0].Method)
	presenter.PresentResult(runs[0], opts, out)
	return apperrors.ExitSuccess
}
