package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptlab_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		},
		[]string{"route", "status"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptlab_upstream_request_duration_seconds",
			Help:    "Upstream chat completion duration in seconds by model and outcome",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 0.1s to ~100s
		},
		[]string{"model", "outcome"},
	)
)

// CountRequest records one handled HTTP request
func CountRequest(route, status string) {
	httpRequestsTotal.WithLabelValues(route, status).Inc()
}

// ObserveUpstream records the duration of one upstream call. Outcome is
// "success" or the error taxonomy tag.
func ObserveUpstream(model, outcome string, elapsed time.Duration) {
	upstreamDuration.WithLabelValues(model, outcome).Observe(elapsed.Seconds())
}

// Handler exposes the Prometheus scrape endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
