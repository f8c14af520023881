package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HttpRequestsTotal counts HTTP requests by method, route and status code.
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "persona_predictor_http_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// HttpPanicsTotal counts handler panics caught by the recovery middleware.
	HttpPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "persona_predictor_http_panics_total",
		Help: "Total panics recovered in HTTP handlers.",
	})

	// InferenceDuration tracks backend latency per operation (generate, classify).
	InferenceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "persona_predictor_inference_duration_seconds",
		Help:    "Time spent waiting for the inference backends.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"operation"})

	// InferenceErrorsTotal counts failed backend calls per operation.
	InferenceErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "persona_predictor_inference_errors_total",
		Help: "Total failed inference backend calls.",
	}, []string{"operation"})

	// CoherenceLabelsTotal counts coherence decisions by label.
	CoherenceLabelsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "persona_predictor_coherence_labels_total",
		Help: "Coherence check results by label.",
	}, []string{"label"})

	// GeneratedSentences tracks how many sentences survive post-processing per request.
	GeneratedSentences = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "persona_predictor_generated_sentences",
		Help:    "Number of sentences returned per generation request.",
		Buckets: []float64{0, 1, 2, 3, 5, 10},
	})

	// ModelAvailable is 1 when the predictor loaded its models at startup.
	ModelAvailable = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "persona_predictor_model_available",
		Help: "Whether the predictor models are available (1) or not (0).",
	})
)
