package syncclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tempo/internal/domain/aggregation"
	"tempo/internal/domain/entity"
	"tempo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_SendsCursorAndDecodesEnvelope(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	mac := uuid.New()
	xcode := entity.App{ID: uuid.New(), Name: "Xcode", Category: entity.CategoryProductive}
	known := uuid.New()
	since := at(1, 0)

	var gotQuery map[string]string
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, statsPath, r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}

		result := aggregation.Build([]*entity.TimelineDetail{timeline(xcode, mac, at(1, 30), at(2, 15))}, tokyo, nil)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": &usecase.Stats{Result: result, TimeZone: "Asia/Tokyo", From: "2025-03-10", To: "2025-03-10"},
			"meta": map[string]string{"request_id": "r1"},
		})
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(server.URL+"/", "token-1")
	stats, err := fetcher.Fetch(context.Background(), &Request{
		Date:        at(3, 0),
		Location:    tokyo,
		Since:       &since,
		KnownAppIDs: []uuid.UUID{known},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-1", gotAuth)
	assert.Equal(t, map[string]string{
		"from":          "2025-03-10",
		"to":            "2025-03-10",
		"time_zone":     "Asia/Tokyo",
		"since":         "2025-03-10T01:00:00Z",
		"known_app_ids": known.String(),
	}, gotQuery)

	assert.Equal(t, "Asia/Tokyo", stats.TimeZone)
	require.Contains(t, stats.Apps, xcode.ID)
	assert.Equal(t, entity.CategoryProductive, stats.Apps[xcode.ID].Category)
	// 01:30Z is 10:30 in Tokyo.
	require.Len(t, stats.Hourly[10], 1)
	assert.Equal(t, int64(30*60*1000), stats.Hourly[10][0].TotalTimeMs)
	require.Len(t, stats.Hourly[11], 1)
	assert.Equal(t, int64(15*60*1000), stats.Hourly[11][0].TotalTimeMs)
	require.NotNil(t, stats.Cursor)
	assert.True(t, stats.Cursor.Equal(at(2, 15)))
}

func TestHTTPFetcher_ReportsErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":"STATS_UNAVAILABLE","message":"Stats are temporarily unavailable"}}`))
	}))
	defer server.Close()

	_, err := NewHTTPFetcher(server.URL, "").Fetch(context.Background(), &Request{Date: at(3, 0), Location: time.UTC})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "STATS_UNAVAILABLE")
}

func TestHTTPFetcher_EmptyDataIsNormalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"time_zone":"UTC","from":"2025-03-10","to":"2025-03-10"}}`))
	}))
	defer server.Close()

	stats, err := NewHTTPFetcher(server.URL, "").Fetch(context.Background(), &Request{Date: at(3, 0), Location: time.UTC})
	require.NoError(t, err)

	require.NotNil(t, stats.Result)
	assert.Empty(t, stats.Apps)
	assert.Empty(t, stats.Hourly)
	assert.Nil(t, stats.Cursor)
}
