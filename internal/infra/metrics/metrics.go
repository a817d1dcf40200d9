// Package metrics exports ingestion measurements to Prometheus.
package metrics

import (
	"net/http"

	"tempo/config"
	"tempo/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const (
	ns        = "tempo"
	subsystem = "ingestion"

	LabelOutcome  = "outcome"
	LabelPlatform = "platform"
)

// IngestionMetrics implements service.IngestionRecorder.
type IngestionMetrics struct {
	Sessions        *prometheus.CounterVec
	AddedSeconds    *prometheus.CounterVec
	PrunedSeconds   prometheus.Counter
	PrunedTimelines prometheus.Counter
	Latency         *prometheus.HistogramVec
}

// NewIngestionMetrics registers the ingestion collectors on reg.
func NewIngestionMetrics(reg prometheus.Registerer) *IngestionMetrics {
	return &IngestionMetrics{
		Sessions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "sessions_total", Namespace: ns, Subsystem: subsystem,
			Help: "The number of session reports, by outcome (recorded, filtered, rejected, failed).",
		}, []string{LabelOutcome, LabelPlatform}),
		AddedSeconds: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "added_seconds_total", Namespace: ns, Subsystem: subsystem,
			Help: "Usage time stored by ingestion after web filtering.",
		}, []string{LabelPlatform}),
		PrunedSeconds: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "pruned_seconds_total", Namespace: ns, Subsystem: subsystem,
			Help: "Web usage time removed because native usage covered it.",
		}),
		PrunedTimelines: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "pruned_timelines_total", Namespace: ns, Subsystem: subsystem,
			Help: "The number of web timelines cut by native reports.",
		}),
		Latency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name: "duration_seconds", Namespace: ns, Subsystem: subsystem,
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			Help:    "The time taken to ingest one session report.",
		}, []string{LabelOutcome}),
	}
}

// ObserveIngestion implements service.IngestionRecorder.
func (m *IngestionMetrics) ObserveIngestion(obs service.IngestionObservation) {
	m.Sessions.WithLabelValues(obs.Outcome, obs.Platform).Inc()
	m.Latency.WithLabelValues(obs.Outcome).Observe(obs.Latency.Seconds())

	if obs.DurationAddedMs > 0 {
		m.AddedSeconds.WithLabelValues(obs.Platform).Add(float64(obs.DurationAddedMs) / 1000)
	}
	if obs.PrunedTimelines > 0 {
		m.PrunedTimelines.Add(float64(obs.PrunedTimelines))
		m.PrunedSeconds.Add(float64(obs.PrunedMs) / 1000)
	}
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewRecorder returns the Prometheus recorder when metrics are enabled.
func NewRecorder(cfg *config.Config, reg *prometheus.Registry) service.IngestionRecorder {
	if !cfg.Metrics.Enabled {
		return service.NoopIngestionRecorder{}
	}

	return NewIngestionMetrics(reg)
}

// NewHandler serves reg in the Prometheus exposition format.
func NewHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRegistry, NewRecorder),
)
