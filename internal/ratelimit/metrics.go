package ratelimit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricEvictions counts client records dropped to respect the client cap
	MetricEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "palette_ratelimit_evictions_total",
		Help: "Client records evicted because the limiter table was full",
	})

	// MetricTrackedClients is the in-memory table size after the last sweep
	MetricTrackedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "palette_ratelimit_tracked_clients",
		Help: "Client records held by the in-memory limiter",
	})

	// MetricBackendErrors counts failed checks against the shared backend
	MetricBackendErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "palette_ratelimit_backend_errors_total",
		Help: "Rate limit checks that failed against the backend",
	})
)
