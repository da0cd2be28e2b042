// Package status collects run statistics. The frame loop writes through cached
// pointers; readers take a sorted snapshot.
package status

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Metric names recorded by the game loop
const (
	MetricFrames        = "frames"
	MetricFrameOverruns = "frame_overruns"
	MetricFrameMsMax    = "frame_ms_max"
	MetricSessions      = "sessions"
	MetricBestScore     = "best_score"
	MetricBestLevel     = "best_level"
)

// Registry holds integer counters and float gauges by name
type Registry struct {
	counters *MetricMap[atomic.Int64]
	gauges   *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: NewMetricMap[atomic.Int64](),
		gauges:   NewMetricMap[AtomicFloat](),
	}
}

// Counter returns the named counter, creating it at zero
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.counters.Get(name)
}

// Gauge returns the named gauge, creating it at zero
func (r *Registry) Gauge(name string) *AtomicFloat {
	return r.gauges.Get(name)
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	return r.counters.Count() + r.gauges.Count()
}

// Fields snapshots every metric for structured logging
func (r *Registry) Fields() logrus.Fields {
	fields := make(logrus.Fields, r.Len())
	r.counters.Range(func(key string, v *atomic.Int64) {
		fields[key] = v.Load()
	})
	r.gauges.Range(func(key string, v *AtomicFloat) {
		fields[key] = v.Get()
	})
	return fields
}
