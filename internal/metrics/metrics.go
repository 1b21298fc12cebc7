// Package metrics exposes Prometheus instrumentation for the report
// ingestion engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry collects the engine's ingestion counters. A fresh instance per
// app container keeps tests isolated from the default registry.
type Registry struct {
	registry *prometheus.Registry

	IngestTotal    *prometheus.CounterVec
	IngestFailures *prometheus.CounterVec
	IngestDuration *prometheus.HistogramVec
	RowsDecoded    *prometheus.CounterVec
}

// New builds a Registry with all collectors registered.
func New() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		registry: reg,
		IngestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hrpulse",
			Subsystem: "ingest",
			Name:      "reports_total",
			Help:      "Report workbooks ingested, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		IngestFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hrpulse",
			Subsystem: "ingest",
			Name:      "failures_total",
			Help:      "Ingestion failures, by kind and error class.",
		}, []string{"kind", "reason"}),
		IngestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hrpulse",
			Subsystem: "ingest",
			Name:      "duration_seconds",
			Help:      "Time spent decoding and aggregating a workbook.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		RowsDecoded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hrpulse",
			Subsystem: "ingest",
			Name:      "rows_decoded_total",
			Help:      "Body rows presented to the decoders, by kind.",
		}, []string{"kind"}),
	}
}

// Handler returns the HTTP handler serving the scrape endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveSuccess records a successful ingestion.
func (r *Registry) ObserveSuccess(kind string, seconds float64, rows int) {
	r.IngestTotal.WithLabelValues(kind, "success").Inc()
	r.IngestDuration.WithLabelValues(kind).Observe(seconds)
	r.RowsDecoded.WithLabelValues(kind).Add(float64(rows))
}

// ObserveFailure records a failed ingestion.
func (r *Registry) ObserveFailure(kind, reason string) {
	r.IngestTotal.WithLabelValues(kind, "failure").Inc()
	r.IngestFailures.WithLabelValues(kind, reason).Inc()
}
