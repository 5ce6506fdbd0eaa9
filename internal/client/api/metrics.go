package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects per-endpoint request counts and latencies in its own
// registry.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hrm",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Backend calls by endpoint key and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	m.duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hrm",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Backend call latency by endpoint key",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	m.registry.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// overrideLabel replaces keys that are not in the endpoint table, so ad hoc
// calls by path cannot grow the label set.
const overrideLabel = "override"

func (m *Metrics) observe(endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(d.Seconds())
}
