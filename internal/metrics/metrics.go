package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts requests by method, route pattern and status class.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orbitalos_http_requests_total",
			Help: "Total HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration observes per-route request latency.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orbitalos_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RefreshTotal counts refresh passes by outcome ("ok" or "error").
	RefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orbitalos_refresh_total",
			Help: "Total position refresh passes",
		},
		[]string{"outcome"},
	)

	// RefreshDuration observes how long one full refresh pass takes.
	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "orbitalos_refresh_duration_seconds",
			Help:    "Duration of one position refresh pass in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// SatellitesTracked is the current registry size.
	SatellitesTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "orbitalos_satellites_tracked",
			Help: "Number of satellites in the registry",
		},
	)

	// StreamClients is the number of connected WebSocket stream clients.
	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "orbitalos_stream_clients",
			Help: "Connected WebSocket position stream clients",
		},
	)
)

// ObserveRefresh records one refresh pass.
func ObserveRefresh(d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	RefreshTotal.WithLabelValues(outcome).Inc()
	RefreshDuration.Observe(d.Seconds())
}

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
