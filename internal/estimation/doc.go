// Package estimation holds the numeric core of the pi estimator: the samplers
// for each method, the work partitioner, the runtime estimator and the
// aggregator that turns partial results into a single estimate.
//
// Everything here is free of goroutines. Parallel execution lives in the
// orchestration package, which only ever hands a WorkUnit to one worker and
// collects the PartialResult it returns.
package estimation
