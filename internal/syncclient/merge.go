// Package syncclient keeps a consumer-side cache of hourly usage and refreshes it
// incrementally with the since cursor.
//
// A cached result stays valid for one local calendar date. Within that date an
// incremental fetch returns only timelines ending after the cursor, and Merge folds
// them into the cache. Once the date changes the cache is discarded and rebuilt
// from a full fetch.
package syncclient

import (
	"time"

	"tempo/internal/domain/aggregation"
	"tempo/internal/domain/entity"
	"tempo/internal/usecase"

	"github.com/google/uuid"
)

// Snapshot is the cached view. BuiltAt is the last full fetch, FetchedAt the last
// refresh of either kind.
type Snapshot struct {
	Stats     *usecase.Stats
	BuiltAt   time.Time
	FetchedAt time.Time
}

// KnownAppIDs returns the ids whose metadata the snapshot already holds.
func (s *Snapshot) KnownAppIDs() []uuid.UUID {
	if s == nil || s.Stats == nil || s.Stats.Result == nil {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(s.Stats.Apps))
	for id := range s.Stats.Apps {
		ids = append(ids, id)
	}

	return ids
}

// Cursor returns the snapshot's since cursor, nil when nothing was fetched yet.
func (s *Snapshot) Cursor() *time.Time {
	if s == nil || s.Stats == nil || s.Stats.Result == nil {
		return nil
	}

	return s.Stats.Cursor
}

// ShouldReset reports whether a cache fetched at lastFetch is stale at now because
// the local calendar date in loc differs.
func ShouldReset(lastFetch, now time.Time, loc *time.Location) bool {
	return !entity.LocalDate(lastFetch, loc).Equal(entity.LocalDate(now, loc))
}

// Merge folds an incremental result into base and returns a new result; neither
// input is modified. Segments are concatenated per (hour, app), totals summed, app
// metadata from delta replaces what base holds, and the cursor is the later one.
// The derived views are recomputed from the merged totals and the latest categories.
func Merge(base, delta *aggregation.Result) *aggregation.Result {
	merged := aggregation.NewResult()
	hourly := make(map[int]map[uuid.UUID]*aggregation.HourlyEntry)
	daily := make(map[uuid.UUID]int64)
	platforms := make(map[uuid.UUID]map[entity.Platform]struct{})

	for _, r := range []*aggregation.Result{base, delta} {
		if r == nil {
			continue
		}

		for id, meta := range r.Apps {
			merged.Apps[id] = meta
		}

		for hour, entries := range r.Hourly {
			byApp, ok := hourly[hour]
			if !ok {
				byApp = make(map[uuid.UUID]*aggregation.HourlyEntry)
				hourly[hour] = byApp
			}
			for _, entry := range entries {
				acc, ok := byApp[entry.AppID]
				if !ok {
					acc = &aggregation.HourlyEntry{AppID: entry.AppID}
					byApp[entry.AppID] = acc
				}
				acc.Timelines = append(acc.Timelines, entry.Timelines...)
				acc.TotalTimeMs += entry.TotalTimeMs
			}
		}

		for _, total := range r.Daily {
			daily[total.AppID] += total.TotalTimeMs
			for _, p := range total.Platforms {
				if _, ok := platforms[total.AppID]; !ok {
					platforms[total.AppID] = make(map[entity.Platform]struct{})
				}
				platforms[total.AppID][p] = struct{}{}
			}
		}

		merged.Cursor = laterCursor(merged.Cursor, r.Cursor)
	}

	for hour, byApp := range hourly {
		entries := make([]*aggregation.HourlyEntry, 0, len(byApp))
		for _, entry := range byApp {
			entries = append(entries, entry)
		}
		merged.Hourly[hour] = entries
	}
	for appID, total := range daily {
		merged.Daily = append(merged.Daily, aggregation.DailyTotal{
			AppID:       appID,
			TotalTimeMs: total,
			Platforms:   aggregation.SortedPlatforms(platforms[appID]),
		})
	}

	merged.Normalize()
	merged.Summarize(merged.Categories())

	return merged
}

// MergeStats merges delta into base, keeping the window of delta when present.
func MergeStats(base, delta *usecase.Stats) *usecase.Stats {
	switch {
	case base == nil:
		return delta
	case delta == nil:
		return base
	}

	return &usecase.Stats{
		Result:   Merge(base.Result, delta.Result),
		TimeZone: firstNonEmpty(delta.TimeZone, base.TimeZone),
		From:     firstNonEmpty(delta.From, base.From),
		To:       firstNonEmpty(delta.To, base.To),
	}
}

func laterCursor(a, b *time.Time) *time.Time {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil || (b != nil && b.After(*a)):
		c := *b

		return &c
	default:
		c := *a

		return &c
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
