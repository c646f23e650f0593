// Package metrics exposes prometheus counters for ingestion outcomes.
// Skip counts are an operational concern only; they never show up in the
// read API.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	rowsIngested = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "emission_calculator",
		Subsystem: "ingest",
		Name:      "rows_ingested_total",
		Help:      "Rows successfully validated, computed and persisted, by activity kind.",
	}, []string{"kind"})

	rowsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "emission_calculator",
		Subsystem: "ingest",
		Name:      "rows_skipped_total",
		Help:      "Rows dropped by row-level validation, by activity kind and reason.",
	}, []string{"kind", "reason"})

	runsCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "emission_calculator",
		Subsystem: "ingest",
		Name:      "runs_total",
		Help:      "Completed ingestion runs by terminal status.",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(rowsIngested, rowsSkipped, runsCompleted)
}

func RowIngested(kind string) {
	rowsIngested.WithLabelValues(kind).Inc()
}

func RowSkipped(kind, reason string) {
	rowsSkipped.WithLabelValues(kind, reason).Inc()
}

func RunCompleted(status string) {
	runsCompleted.WithLabelValues(status).Inc()
}
