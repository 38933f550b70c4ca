// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "khamar_record_mutations_total",
		Help: "Daily record mutations acknowledged by the record store",
	}, []string{"op"})

	RecordStoreFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "khamar_record_store_failures_total",
		Help: "Record store calls that failed",
	}, []string{"op"})

	AnomalyOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "khamar_anomaly_outcomes_total",
		Help: "Anomaly detector results by terminal status",
	}, []string{"status"})

	NarrativeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "khamar_narrative_requests_total",
		Help: "Narrative insight calls by pipeline and result",
	}, []string{"pipeline", "result"})

	NarrativeLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "khamar_narrative_latency_seconds",
		Help:    "Latency of narrative insight calls",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
	}, []string{"pipeline"})
)
