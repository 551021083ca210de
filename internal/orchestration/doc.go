// Package orchestration runs an estimation end to end: it partitions the
// work, projects the runtime, dispatches chunks to a bounded worker pool and
// aggregates the partial results. Presentation is decoupled through the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
