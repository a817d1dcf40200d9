package main

import (
	"bytes"
	"testing"
	"time"

	"tempo/internal/domain/aggregation"
	"tempo/internal/domain/entity"
	"tempo/internal/domain/interval"
	"tempo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRenderStats(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	xcode := entity.App{ID: uuid.New(), Name: "Xcode", Category: entity.CategoryProductive}
	result := aggregation.Build([]*entity.TimelineDetail{{
		TimelineID:     uuid.New(),
		DeviceID:       uuid.New(),
		DevicePlatform: entity.PlatformMacOS,
		App:            xcode,
		Interval:       interval.MustNew(start, start.Add(45*time.Minute)),
	}}, time.UTC, nil)

	var buf bytes.Buffer
	renderStats(&buf, &usecase.Stats{Result: result, TimeZone: "UTC", From: "2025-03-10", To: "2025-03-10"})

	out := buf.String()
	assert.Contains(t, out, "2025-03-10 (UTC)")
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "10:00")
	assert.Contains(t, out, "Xcode")
	assert.Contains(t, out, "productive")
	assert.Contains(t, out, "30m0s")
	assert.Contains(t, out, "45m0s")
	assert.Contains(t, out, "macos")
	assert.Contains(t, out, "(100%)")
}

func TestRenderStats_UnknownAppFallsBackToID(t *testing.T) {
	appID := uuid.New()
	result := aggregation.NewResult()
	result.Daily = []aggregation.DailyTotal{{AppID: appID, TotalTimeMs: 90_000}}
	result.Summarize(nil)

	var buf bytes.Buffer
	renderStats(&buf, &usecase.Stats{Result: result, TimeZone: "UTC", From: "2025-03-10"})

	assert.Contains(t, buf.String(), appID.String())
	assert.Contains(t, buf.String(), "1m30s")
	assert.Contains(t, buf.String(), "(0%)")
}
