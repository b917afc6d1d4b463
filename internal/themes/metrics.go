package themes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes, used as the "outcome" label.
const (
	OutcomeSuccess     = "success"
	OutcomeFallback    = "fallback"
	OutcomeInvalid     = "invalid"
	OutcomeRateLimited = "rate_limited"
)

var (
	// MetricRequestsTotal counts themed palette requests by terminal state
	MetricRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_theme_requests_total",
		Help: "Themed palette requests by outcome",
	}, []string{"outcome"})

	// MetricModelErrorsTotal counts failures behind fallback responses
	MetricModelErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_model_errors_total",
		Help: "Model failures by kind (transport, format)",
	}, []string{"kind"})

	// MetricModelDuration tracks how long the model takes to answer
	MetricModelDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "palette_model_duration_seconds",
		Help:    "Model invocation latency in seconds",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 6, 8, 10, 15},
	})
)
