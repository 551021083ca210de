package metrics

import "runtime"

// MemorySnapshot holds a point-in-time reading of the process runtime.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	Goroutines   int
}

// MemoryCollector reads runtime memory statistics. It also feeds the
// heap_alloc_bytes gauge of the Collector.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics. ReadMemStats stops the world,
// so it is never called on the sampling hot path.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		Goroutines:   runtime.NumGoroutine(),
	}
}

// PauseTotalMillis returns the cumulative GC pause in milliseconds.
func (s MemorySnapshot) PauseTotalMillis() float64 {
	return float64(s.PauseTotalNs) / 1e6
}
