// Package status is the lock-free metrics facade shared by the animator, the status line and /metrics
package status

import "sync/atomic"

// Registry is the central metrics facade
// Producers cache pointers during init; hot paths write directly to atomics
type Registry struct {
	Bools    *MetricMap[atomic.Bool]
	Ints     *MetricMap[atomic.Int64]
	Counters *MetricMap[atomic.Int64] // monotonic; exported as counters
	Floats   *MetricMap[AtomicFloat]
	Strings  *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:    NewMetricMap[atomic.Bool](),
		Ints:     NewMetricMap[atomic.Int64](),
		Counters: NewMetricMap[atomic.Int64](),
		Floats:   NewMetricMap[AtomicFloat](),
		Strings:  NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Counters.Count() + r.Floats.Count() + r.Strings.Count()
}
