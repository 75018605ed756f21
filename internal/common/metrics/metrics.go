package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LettersGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "letters_generated_total",
			Help: "Total number of letters generated, by letter type",
		},
		[]string{"letter_type"},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "letter_validation_failures_total",
			Help: "Total number of rejected generation requests, by error code",
		},
		[]string{"error_code"},
	)

	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "letter_render_duration_seconds",
			Help: "Duration of template rendering in seconds",
		},
		[]string{"letter_type"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)
)
