// Package metrics exposes the Prometheus collectors used by the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "anirex_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anirex_catalog_requests_total",
			Help: "Total number of upstream catalog requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "anirex_catalog_request_duration_seconds",
			Help:    "Duration of upstream catalog requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	CatalogBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "anirex_catalog_breaker_state",
			Help: "Catalog circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	ReviewsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "anirex_reviews_submitted_total",
			Help: "Total number of reviews accepted",
		},
	)

	CollectionWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anirex_collection_writes_total",
			Help: "Favorite and watchlist writes by kind and operation",
		},
		[]string{"kind", "op"},
	)
)

// RecordHTTPRequest observes one served request.
func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// RecordCatalogRequest observes one upstream catalog call.
func RecordCatalogRequest(endpoint, outcome string, d time.Duration) {
	CatalogRequests.WithLabelValues(endpoint, outcome).Inc()
	CatalogRequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
