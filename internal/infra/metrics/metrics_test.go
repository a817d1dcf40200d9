package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tempo/config"
	"tempo/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestionMetrics_ObserveIngestion(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewIngestionMetrics(reg)

	m.ObserveIngestion(service.IngestionObservation{
		Outcome:         service.OutcomeRecorded,
		Platform:        "macos",
		DurationAddedMs: 90_000,
		PrunedMs:        30_000,
		PrunedTimelines: 2,
		Latency:         5 * time.Millisecond,
	})
	m.ObserveIngestion(service.IngestionObservation{
		Outcome:  service.OutcomeFiltered,
		Platform: "web",
		Latency:  time.Millisecond,
	})

	assert.InDelta(t, 1, testutil.ToFloat64(m.Sessions.WithLabelValues(service.OutcomeRecorded, "macos")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Sessions.WithLabelValues(service.OutcomeFiltered, "web")), 0)
	assert.InDelta(t, 90, testutil.ToFloat64(m.AddedSeconds.WithLabelValues("macos")), 0.0001)
	assert.InDelta(t, 30, testutil.ToFloat64(m.PrunedSeconds), 0.0001)
	assert.InDelta(t, 2, testutil.ToFloat64(m.PrunedTimelines), 0)
}

func TestNewRecorder_DisabledIsNoop(t *testing.T) {
	recorder := NewRecorder(&config.Config{}, NewRegistry())
	assert.IsType(t, service.NoopIngestionRecorder{}, recorder)
}

func TestNewHandler_ServesRegistry(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Enabled = true
	reg := NewRegistry()
	recorder := NewRecorder(cfg, reg)
	recorder.ObserveIngestion(service.IngestionObservation{Outcome: service.OutcomeRecorded, Platform: "linux"})

	rec := httptest.NewRecorder()
	NewHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tempo_ingestion_sessions_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
