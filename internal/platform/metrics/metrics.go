// Package metrics exposes Prometheus instruments for the HTTP surface and
// the database gateway.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "companies_api"

// Metrics holds the instruments on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	// RequestTotal counts HTTP requests by method, route pattern and status.
	RequestTotal *prometheus.CounterVec
	// RequestDuration is the latency of HTTP requests.
	RequestDuration *prometheus.HistogramVec
	// QueryTotal counts company queries by route and outcome
	// ("ok" or a store error kind).
	QueryTotal *prometheus.CounterVec
	// QueryDocuments observes how many documents a query returned.
	QueryDocuments *prometheus.HistogramVec
}

// New registers all instruments, plus the Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		RequestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		QueryTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Total number of company queries by outcome",
			},
			[]string{"route", "outcome"},
		),
		QueryDocuments: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_documents",
				Help:      "Number of documents returned per query",
				Buckets:   []float64{0, 1, 5, 10, 20, 50, 100, 500, 1000},
			},
			[]string{"route"},
		),
	}
	reg.MustRegister(
		m.RequestTotal,
		m.RequestDuration,
		m.QueryTotal,
		m.QueryDocuments,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.RequestTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveQuery records one executed company query. outcome is "ok" on
// success; documents is ignored otherwise.
func (m *Metrics) ObserveQuery(route, outcome string, documents int) {
	m.QueryTotal.WithLabelValues(route, outcome).Inc()
	if outcome == "ok" {
		m.QueryDocuments.WithLabelValues(route).Observe(float64(documents))
	}
}
