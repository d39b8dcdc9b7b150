package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Components cache pointers at construction; frame updates write the atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot renders every metric as a string keyed by name, used by the debug overlay
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Bools.Range(func(k string, p *atomic.Bool) { out[k] = strconv.FormatBool(p.Load()) })
	r.Ints.Range(func(k string, p *atomic.Int64) { out[k] = strconv.FormatInt(p.Load(), 10) })
	r.Floats.Range(func(k string, p *AtomicFloat) { out[k] = fmt.Sprintf("%.2f", p.Get()) })
	r.Strings.Range(func(k string, p *AtomicString) { out[k] = p.Load() })
	return out
}
