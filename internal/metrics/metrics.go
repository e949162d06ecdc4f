package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ModelInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "techtospeak_model_invocations_total",
			Help: "Total number of model invocations by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	ModelInvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "techtospeak_model_invocation_duration_seconds",
			Help:    "Duration of model invocations in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 80},
		},
		[]string{"operation"},
	)

	NormalizationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "techtospeak_normalization_outcomes_total",
			Help: "Model replies by the recovery stage that parsed them (miss = fallback record)",
		},
		[]string{"operation", "stage"},
	)

	SchemaMismatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "techtospeak_record_schema_mismatches_total",
			Help: "Parsed replies that did not match the expected record shape",
		},
		[]string{"operation"},
	)

	UnknownUrgency = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "techtospeak_unknown_urgency_total",
			Help: "Records whose nivel_urgencia is outside baja/media/alta",
		},
	)

	CleanupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "techtospeak_cleanup_failures_total",
			Help: "Failures releasing temporary files or staged uploads",
		},
		[]string{"resource"},
	)
)
