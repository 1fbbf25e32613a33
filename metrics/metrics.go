// Package metrics exposes tempuscache's operational counters as
// Prometheus collectors. It is a pure observer: nothing in this package
// can influence cache semantics, and the cache core never imports it
// directly — a *Collector is handed to tempuscache.WithMetrics as an
// interface, keeping the core free of a compile-time Prometheus
// dependency for callers who don't want one.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector wraps the Prometheus collectors tempuscache.Cache updates on
// every operation.
type Collector struct {
	keyCount  prometheus.Gauge
	bytesUsed prometheus.Gauge
	ops       prometheus.Counter
	results   *prometheus.CounterVec
	evictions *prometheus.CounterVec
}

// NewCollector builds a Collector and registers its metrics against reg.
// Passing nil uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		keyCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tempuscache",
			Name:      "keys",
			Help:      "Number of keys currently retained by the cache.",
		}),
		bytesUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tempuscache",
			Name:      "bytes_used",
			Help:      "Estimated memory usage of the cache, in bytes.",
		}),
		ops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tempuscache",
			Name:      "operations_total",
			Help:      "Total number of public cache operations served.",
		}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tempuscache",
			Name:      "lookups_total",
			Help:      "Total Get lookups, partitioned by hit or miss.",
		}, []string{"result"}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tempuscache",
			Name:      "evictions_total",
			Help:      "Total key evictions, partitioned by reason.",
		}, []string{"reason"}),
	}

	reg.MustRegister(c.keyCount, c.bytesUsed, c.ops, c.results, c.evictions)
	return c
}

// SetKeyCount records the cache's current key count.
func (c *Collector) SetKeyCount(n int) {
	c.keyCount.Set(float64(n))
}

// SetBytesUsed records the cache's current estimated byte usage.
func (c *Collector) SetBytesUsed(n int64) {
	c.bytesUsed.Set(float64(n))
}

// IncOps increments the total operation counter. ops/sec is derived from
// this counter divided by elapsed wall time, the same way the original
// C++ Cache derived it, so it is intentionally cumulative across Flush
// (spec open question, preserved).
func (c *Collector) IncOps() {
	c.ops.Inc()
}

// IncHit records a successful Get.
func (c *Collector) IncHit() {
	c.results.WithLabelValues("hit").Inc()
}

// IncMiss records an unsuccessful Get (absent or expired key).
func (c *Collector) IncMiss() {
	c.results.WithLabelValues("miss").Inc()
}

// IncEviction records a key leaving the cache for the given reason
// ("memory" or "capacity").
func (c *Collector) IncEviction(reason string) {
	c.evictions.WithLabelValues(reason).Inc()
}
