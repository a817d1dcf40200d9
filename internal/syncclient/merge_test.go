package syncclient

import (
	"testing"
	"time"

	"tempo/internal/domain/aggregation"
	"tempo/internal/domain/entity"
	"tempo/internal/domain/interval"
	"tempo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func timeline(app entity.App, device uuid.UUID, start, end time.Time) *entity.TimelineDetail {
	return &entity.TimelineDetail{
		TimelineID: uuid.New(),
		AppUsageID: uuid.New(),
		DeviceID:   device,
		App:        app,
		Date:       entity.LocalDate(start, time.UTC),
		Interval:   interval.MustNew(start, end),
	}
}

func appIDs(r *aggregation.Result) map[uuid.UUID]struct{} {
	known := make(map[uuid.UUID]struct{}, len(r.Apps))
	for id := range r.Apps {
		known[id] = struct{}{}
	}

	return known
}

func TestMerge_EquivalentToFullBuild(t *testing.T) {
	mac := uuid.New()
	xcode := entity.App{ID: uuid.New(), Name: "Xcode", Category: entity.CategoryProductive}
	slack := entity.App{ID: uuid.New(), Name: "Slack", Category: entity.CategoryNeutral}

	first := []*entity.TimelineDetail{
		timeline(xcode, mac, at(9, 0), at(9, 45)),
		timeline(xcode, mac, at(9, 50), at(10, 20)),
	}
	second := []*entity.TimelineDetail{
		timeline(xcode, mac, at(10, 30), at(11, 15)),
		timeline(slack, mac, at(11, 20), at(12, 5)),
	}

	cached := aggregation.Build(first, time.UTC, nil)
	delta := aggregation.Build(second, time.UTC, appIDs(cached))
	full := aggregation.Build(append(append([]*entity.TimelineDetail{}, first...), second...), time.UTC, nil)

	assert.NotContains(t, delta.Apps, xcode.ID)
	assert.Contains(t, delta.Apps, slack.ID)
	assert.Equal(t, full, Merge(cached, delta))
}

func TestMerge_ConcatenatesSegmentsWithinHour(t *testing.T) {
	mac := uuid.New()
	xcode := entity.App{ID: uuid.New(), Name: "Xcode"}

	cached := aggregation.Build([]*entity.TimelineDetail{timeline(xcode, mac, at(9, 0), at(9, 10))}, time.UTC, nil)
	delta := aggregation.Build([]*entity.TimelineDetail{timeline(xcode, mac, at(9, 30), at(9, 50))}, time.UTC, appIDs(cached))

	merged := Merge(cached, delta)

	require.Len(t, merged.Hourly[9], 1)
	entry := merged.Hourly[9][0]
	assert.Equal(t, int64(30*60*1000), entry.TotalTimeMs)
	require.Len(t, entry.Timelines, 2)
	assert.True(t, entry.Timelines[0].Start.Equal(at(9, 0)))
	assert.True(t, entry.Timelines[1].Start.Equal(at(9, 30)))
	require.Len(t, merged.Daily, 1)
	assert.Equal(t, int64(30*60*1000), merged.Daily[0].TotalTimeMs)
	require.NotNil(t, merged.Cursor)
	assert.True(t, merged.Cursor.Equal(at(9, 50)))
}

func TestMerge_LatestMetadataWins(t *testing.T) {
	appID := uuid.New()
	cached := aggregation.NewResult()
	cached.Apps[appID] = aggregation.AppMetadata{ID: appID, Name: "Figma", Category: entity.CategoryUncategorized}
	delta := aggregation.NewResult()
	delta.Apps[appID] = aggregation.AppMetadata{ID: appID, Name: "Figma", Category: entity.CategoryProductive, AutoSuggested: true}

	merged := Merge(cached, delta)

	assert.Equal(t, entity.CategoryProductive, merged.Apps[appID].Category)
	assert.True(t, merged.Apps[appID].AutoSuggested)
}

func TestMerge_RecomputesViewsWithLatestCategory(t *testing.T) {
	mac, web := uuid.New(), uuid.New()
	figma := entity.App{ID: uuid.New(), Name: "Figma", Category: entity.CategoryUncategorized}

	first := timeline(figma, mac, at(9, 0), at(9, 30))
	first.DevicePlatform = entity.PlatformMacOS
	cached := aggregation.Build([]*entity.TimelineDetail{first}, time.UTC, nil)
	require.Equal(t, 0, cached.Summary.ProductivityScore)

	figma.Category = entity.CategoryProductive
	figma.AutoSuggested = true
	second := timeline(figma, web, at(10, 0), at(10, 30))
	second.DevicePlatform = entity.PlatformWeb
	delta := aggregation.Build([]*entity.TimelineDetail{second}, time.UTC, nil)

	merged := Merge(cached, delta)
	full := aggregation.Build([]*entity.TimelineDetail{
		timeline(figma, mac, at(9, 0), at(9, 30)),
		timeline(figma, web, at(10, 0), at(10, 30)),
	}, time.UTC, nil)

	assert.Equal(t, aggregation.Summary{
		TotalTimeMs:       60 * 60 * 1000,
		ProductiveMs:      60 * 60 * 1000,
		ProductivityScore: 100,
	}, merged.Summary)
	assert.Equal(t, full.CategoryDistribution, merged.CategoryDistribution)
	assert.Equal(t, full.ActivityProfile, merged.ActivityProfile)
	require.Len(t, merged.TopApps, 1)
	assert.Equal(t, []entity.Platform{entity.PlatformMacOS, entity.PlatformWeb}, merged.TopApps[0].Platforms)
	assert.Equal(t, merged.Daily, merged.TopApps)
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	mac := uuid.New()
	xcode := entity.App{ID: uuid.New(), Name: "Xcode"}
	cached := aggregation.Build([]*entity.TimelineDetail{timeline(xcode, mac, at(9, 0), at(9, 10))}, time.UTC, nil)
	delta := aggregation.Build([]*entity.TimelineDetail{timeline(xcode, mac, at(9, 30), at(9, 50))}, time.UTC, nil)

	Merge(cached, delta)

	assert.Len(t, cached.Hourly[9][0].Timelines, 1)
	assert.Equal(t, int64(10*60*1000), cached.Hourly[9][0].TotalTimeMs)
	assert.True(t, cached.Cursor.Equal(at(9, 10)))
}

func TestMerge_EmptyDeltaKeepsCursor(t *testing.T) {
	mac := uuid.New()
	xcode := entity.App{ID: uuid.New(), Name: "Xcode"}
	cached := aggregation.Build([]*entity.TimelineDetail{timeline(xcode, mac, at(9, 0), at(9, 10))}, time.UTC, nil)

	merged := Merge(cached, aggregation.NewResult())

	assert.Equal(t, cached, merged)
}

func TestMergeStats_KeepsWindow(t *testing.T) {
	base := &usecase.Stats{Result: aggregation.NewResult(), TimeZone: "UTC", From: "2025-03-10", To: "2025-03-10"}
	delta := &usecase.Stats{Result: aggregation.NewResult(), TimeZone: "UTC", From: "2025-03-10", To: "2025-03-10"}

	merged := MergeStats(base, delta)

	assert.Equal(t, "2025-03-10", merged.From)
	assert.Equal(t, "UTC", merged.TimeZone)
	assert.Same(t, delta, MergeStats(nil, delta))
	assert.Same(t, base, MergeStats(base, nil))
}

func TestShouldReset(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tests := []struct {
		name      string
		lastFetch time.Time
		now       time.Time
		loc       *time.Location
		want      bool
	}{
		{name: "same day", lastFetch: at(9, 0), now: at(23, 59), loc: time.UTC, want: false},
		{name: "next day", lastFetch: at(23, 59), now: at(24, 0), loc: time.UTC, want: true},
		{name: "midnight in zone", lastFetch: at(14, 0), now: at(15, 30), loc: tokyo, want: true},
		{name: "same zone day", lastFetch: at(15, 30), now: at(23, 0), loc: tokyo, want: false},
		{name: "clock moved back", lastFetch: at(24, 30), now: at(23, 0), loc: time.UTC, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldReset(tt.lastFetch, tt.now, tt.loc))
		})
	}
}
