//go:generate mockgen -source=method.go -destination=mocks/mock_method.go -package=mocks

package estimation

import (
	"fmt"
	"math/big"
	"sort"
	"sync"
)

// Method is one way of estimating pi from independent units of work.
//
// Sample must be a pure function of its unit: it may not touch state shared
// with other units, since units run concurrently.
type Method interface {
	// Name returns the registry key (e.g. "montecarlo").
	Name() string
	// Description returns a human-readable label.
	Description() string
	// Units normalizes a requested unit count to one the method accepts.
	Units(n uint64) uint64
	// Sample processes one unit and returns its partial result.
	Sample(unit WorkUnit) PartialResult
	// Combine turns the summed partials into the final estimate.
	Combine(hits uint64, sum float64, total uint64) float64
}

// ExactCombiner is implemented by methods whose estimate is an exact ratio.
type ExactCombiner interface {
	Exact(hits, total uint64) *big.Rat
}

// SamplingMethod is implemented by statistical methods that can report the
// uncertainty of their estimate.
type SamplingMethod interface {
	StandardError(hits, total uint64) float64
	LocalEstimate(p PartialResult) float64
}

var (
	_ Method         = MonteCarlo{}
	_ Method         = Simpson{}
	_ ExactCombiner  = MonteCarlo{}
	_ SamplingMethod = MonteCarlo{}
)

// Registry maps method names to implementations.
type Registry struct {
	mu      sync.RWMutex
	methods map[string]Method
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{methods: make(map[string]Method)}
}

// NewDefaultRegistry returns a registry with every built-in method.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(MonteCarlo{})
	r.Register(Simpson{})
	return r
}

// Register adds or replaces a method under its name.
func (r *Registry) Register(m Method) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods[m.Name()] = m
}

// Get returns the method registered under name.
func (r *Registry) Get(name string) (Method, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown estimation method %q", name)
	}
	return m, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves a method selection: "all" yields every registered method in
// name order, anything else a single method.
func (r *Registry) Select(name string) ([]Method, error) {
	if name != "all" {
		m, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		return []Method{m}, nil
	}
	names := r.List()
	methods := make([]Method, 0, len(names))
	for _, n := range names {
		m, err := r.Get(n)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}
