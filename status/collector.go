package status

import (
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports a Registry to Prometheus
// Keys are discovered at scrape time, so the collector is unchecked (Describe sends nothing)
type Collector struct {
	reg       *Registry
	namespace string
}

// NewCollector wraps reg; metric names are namespace_<key with dots replaced by underscores>
func NewCollector(reg *Registry, namespace string) *Collector {
	return &Collector{reg: reg, namespace: namespace}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Ints.Range(func(key string, v *atomic.Int64) {
		ch <- c.gauge(key, float64(v.Load()), nil)
	})
	c.reg.Counters.Range(func(key string, v *atomic.Int64) {
		ch <- c.metric(key+".total", prometheus.CounterValue, float64(v.Load()), nil)
	})
	c.reg.Floats.Range(func(key string, v *AtomicFloat) {
		ch <- c.gauge(key, v.Get(), nil)
	})
	c.reg.Bools.Range(func(key string, v *atomic.Bool) {
		val := 0.0
		if v.Load() {
			val = 1
		}
		ch <- c.gauge(key, val, nil)
	})
	// Strings become info-style gauges carrying the value as a label
	c.reg.Strings.Range(func(key string, v *AtomicString) {
		ch <- c.gauge(key+".info", 1, prometheus.Labels{"value": v.Load()})
	})
}

func (c *Collector) gauge(key string, val float64, labels prometheus.Labels) prometheus.Metric {
	return c.metric(key, prometheus.GaugeValue, val, labels)
}

func (c *Collector) metric(key string, vt prometheus.ValueType, val float64, labels prometheus.Labels) prometheus.Metric {
	desc := prometheus.NewDesc(
		prometheus.BuildFQName(c.namespace, "", MetricName(key)),
		"finality race metric "+key,
		nil,
		labels,
	)
	return prometheus.MustNewConstMetric(desc, vt, val)
}

// MetricName converts a registry key into a Prometheus-safe name
func MetricName(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
}
