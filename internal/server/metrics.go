package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus instruments for the HTTP surface.
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics registers the request counter and duration histogram on the
// given registry.
func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "footprint",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by path and status code.",
		}, []string{"path", "code"}),
		duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "footprint",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}
}
