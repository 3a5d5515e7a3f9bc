package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the simulator collectors. Each instance owns its registry so
// several simulators can run in one process.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	valueMismatches prometheus.Counter
	tagFailures     prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "polip",
				Subsystem: "ingest",
				Name:      "requests_total",
				Help:      "Total device requests by route and status code.",
			},
			[]string{"route", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "polip",
				Subsystem: "ingest",
				Name:      "request_duration_seconds",
				Help:      "Device request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		valueMismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "polip",
			Subsystem: "ingest",
			Name:      "value_mismatches_total",
			Help:      "Requests rejected with value invalid.",
		}),
		tagFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "polip",
			Subsystem: "ingest",
			Name:      "tag_failures_total",
			Help:      "Requests rejected because the tag did not verify.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.valueMismatches,
		m.tagFailures,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
