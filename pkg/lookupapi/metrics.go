package lookupapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "browscap"

// Lookup outcomes used as the "outcome" label.
const (
	OutcomeMatch   = "match"
	OutcomeNoMatch = "no_match"
	OutcomeError   = "error"
)

type metrics struct {
	registry  *prometheus.Registry
	lookups   *prometheus.CounterVec
	latency   prometheus.Histogram
	batchSize prometheus.Histogram
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		registry: reg,
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "lookups_total",
				Help:      "User agent lookups by outcome.",
			},
			[]string{"outcome"},
		),
		latency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "lookup_duration_seconds",
				Help:      "Time spent resolving a single user agent.",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		batchSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "batch_size",
				Help:      "User agents per batch request.",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
	reg.MustRegister(m.lookups, m.latency, m.batchSize)
	return m
}

func (m *metrics) observe(start time.Time, outcome string) {
	m.latency.Observe(time.Since(start).Seconds())
	m.lookups.WithLabelValues(outcome).Inc()
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
