package indexedset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    addCounter      prometheus.Counter
//	    lookupHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordAdd(duration time.Duration, added bool) {
//	    p.addCounter.Inc()
//	    // ... record duration, rejection state, etc.
//	}
type MetricsCollector interface {
	// RecordAdd is called after each Add operation.
	// duration is the time taken, added is false for a duplicate.
	RecordAdd(duration time.Duration, added bool)

	// RecordRemove is called after each Remove operation, including
	// removals driven by RemoveByField, Clear, or an Iterator.
	// removed is false when the member was not present.
	RecordRemove(duration time.Duration, removed bool)

	// RecordLookup is called after each GetByField/GetFirstByField.
	// hits is the number of members returned.
	RecordLookup(duration time.Duration, hits int)

	// RecordClear is called after each Clear with the number of members
	// removed and the total time taken.
	RecordClear(removed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration, bool)    {}
func (NoopMetricsCollector) RecordRemove(time.Duration, bool) {}
func (NoopMetricsCollector) RecordLookup(time.Duration, int)  {}
func (NoopMetricsCollector) RecordClear(int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount         atomic.Int64
	AddRejected      atomic.Int64
	AddTotalNanos    atomic.Int64
	RemoveCount      atomic.Int64
	RemoveMissed     atomic.Int64
	RemoveTotalNanos atomic.Int64
	LookupCount      atomic.Int64
	LookupHits       atomic.Int64
	LookupTotalNanos atomic.Int64
	ClearCount       atomic.Int64
	ClearRemoved     atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration, added bool) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if !added {
		b.AddRejected.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, removed bool) {
	b.RemoveCount.Add(1)
	b.RemoveTotalNanos.Add(duration.Nanoseconds())
	if !removed {
		b.RemoveMissed.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, hits int) {
	b.LookupCount.Add(1)
	b.LookupHits.Add(int64(hits))
	b.LookupTotalNanos.Add(duration.Nanoseconds())
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(removed int, duration time.Duration) {
	b.ClearCount.Add(1)
	b.ClearRemoved.Add(int64(removed))
}
