package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"palette-api/internal/ui"
)

var (
	// MetricHTTPRequestsTotal counts API requests by route and status code
	MetricHTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_http_requests_total",
		Help: "Total API requests by route and status code",
	}, []string{"route", "code"})

	// MetricHTTPDuration tracks API latency by route
	MetricHTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "palette_http_request_duration_seconds",
		Help:    "API request duration in seconds",
		Buckets: []float64{0.005, 0.05, 0.25, 1, 2.5, 5, 10, 15},
	}, []string{"route"})
)

// instrument records request count and latency under a fixed route label
func instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		MetricHTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		MetricHTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// MetricsServer wraps the HTTP server for prometheus metrics
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer creates a new metrics server
func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start begins serving metrics (non-blocking)
func (m *MetricsServer) Start() {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ui.LogStatus("error", "Metrics server error: "+err.Error())
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
