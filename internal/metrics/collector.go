package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

const namespace = "picalc"

// Run outcomes used as the status label of picalc_runs_total.
const (
	StatusSuccess = "success"
	StatusFault   = "fault"
)

// Collector owns the metrics of one process. A nil *Collector is valid and
// records nothing.
type Collector struct {
	registry      *prometheus.Registry
	runs          *prometheus.CounterVec
	units         *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
	chunkDuration *prometheus.HistogramVec
	relativeError *prometheus.GaugeVec
}

// NewCollector creates a collector with its own registry, including the Go
// runtime collector and a heap gauge fed by MemoryCollector.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Estimation runs by method and outcome.",
		}, []string{"method", "status"}),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_total",
			Help:      "Trials or subintervals processed.",
		}, []string{"method"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of complete runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"method"}),
		chunkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_duration_seconds",
			Help:      "Duration of individual work units.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"method"}),
		relativeError: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "relative_error_percent",
			Help:      "Relative error of the last estimate against math.Pi.",
		}, []string{"method"}),
	}

	mem := NewMemoryCollector()
	heap := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "heap_alloc_bytes",
		Help:      "Bytes of allocated heap objects.",
	}, func() float64 { return float64(mem.Snapshot().HeapAlloc) })

	c.registry.MustRegister(
		c.runs, c.units, c.runDuration, c.chunkDuration, c.relativeError,
		heap, collectors.NewGoCollector(),
	)
	return c
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// ObserveChunk records one completed unit of work.
func (c *Collector) ObserveChunk(method string, units uint64, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.units.WithLabelValues(method).Add(float64(units))
	c.chunkDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveRun records a successful run.
func (c *Collector) ObserveRun(method string, d time.Duration, relativeError float64) {
	if c == nil {
		return
	}
	c.runs.WithLabelValues(method, StatusSuccess).Inc()
	c.runDuration.WithLabelValues(method).Observe(d.Seconds())
	c.relativeError.WithLabelValues(method).Set(relativeError)
}

// ObserveFault records a run aborted by a worker fault.
func (c *Collector) ObserveFault(method string) {
	if c == nil {
		return
	}
	c.runs.WithLabelValues(method, StatusFault).Inc()
}

// WriteText writes every gathered family in the Prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	if c == nil {
		return nil
	}
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
