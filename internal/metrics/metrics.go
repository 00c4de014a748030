package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysisLatency measures discovery and segmentation calls
	AnalysisLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "supertag_analysis_duration_seconds",
			Help:    "Analysis latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	// AnalysisTotal counts analysis calls by outcome
	AnalysisTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supertag_analysis_total",
			Help: "Total number of analysis calls",
		},
		[]string{"operation", "outcome"},
	)

	// EventsIngested counts events appended to the event store
	EventsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "supertag_events_ingested_total",
			Help: "Total number of device events ingested",
		},
	)

	// UnknownStateRatio is the share of the last analyzed window spent in "unknown"
	UnknownStateRatio = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "supertag_unknown_state_ratio",
			Help: "Ratio of the last analysis window attributed to the unknown state",
		},
		[]string{"parameter"},
	)
)

// ObserveAnalysis records latency and outcome of one operation started at start.
func ObserveAnalysis(operation string, start time.Time, err error) {
	AnalysisLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	AnalysisTotal.WithLabelValues(operation, outcome).Inc()
}
