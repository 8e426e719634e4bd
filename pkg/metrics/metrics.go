// Package metrics exposes Prometheus instrumentation for the HTTP surface.
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
	// HTTPRequestDuration observes request latency by method, path, and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	// RequestsSubmitted counts accepted project-request intakes.
	RequestsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "project_requests_submitted_total",
			Help: "Total project requests accepted through public intake",
		},
	)

	// RequestsConverted counts request-to-project conversions.
	RequestsConverted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "project_requests_converted_total",
			Help: "Total project requests converted into client projects",
		},
	)
)

// Handler returns the Prometheus scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware returns middleware that records request duration histograms.
// Paths are recorded as URL path templates only when the mux resolved a
// pattern; otherwise the raw path is used.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			path := r.URL.Path
			if pattern := r.Pattern; pattern != "" {
				path = pattern
			}

			HTTPRequestDuration.WithLabelValues(
				r.Method,
				path,
				strconv.Itoa(rec.status),
			).Observe(time.Since(start).Seconds())
		})
	}
}
