// Package aggregation rebuilds per-hour, per-app usage from persisted timelines.
//
// Build is a pure function of its inputs: the same timelines, zone and known-app
// set always produce the same Result.
package aggregation

import (
	"bytes"
	"slices"
	"sort"
	"strings"
	"time"

	"tempo/internal/domain/entity"
	"tempo/internal/domain/interval"

	"github.com/google/uuid"
)

// Segment is the part of a timeline that falls inside one local hour.
type Segment struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	DeviceID uuid.UUID `json:"device_id"`
}

// Duration returns End - Start.
func (s Segment) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// HourlyEntry is one app's activity inside one local hour.
type HourlyEntry struct {
	AppID       uuid.UUID `json:"app_id"`
	Timelines   []Segment `json:"timelines"`
	TotalTimeMs int64     `json:"total_time_ms"`
}

// DailyTotal is one app's time summed across every hour, with the platforms it ran on.
type DailyTotal struct {
	AppID       uuid.UUID         `json:"app_id"`
	TotalTimeMs int64             `json:"total_time_ms"`
	Platforms   []entity.Platform `json:"platforms,omitempty"`
}

// AppMetadata is the category information a consumer needs to render an app.
type AppMetadata struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      entity.Category `json:"category"`
	AutoSuggested bool            `json:"auto_suggested"`
}

// Result is the aggregated view returned to consumers. Summary, CategoryDistribution,
// ActivityProfile and TopApps are derived from Hourly and Daily by Summarize.
type Result struct {
	Apps   map[uuid.UUID]AppMetadata `json:"apps"`
	Hourly map[int][]*HourlyEntry    `json:"hourly"`
	Daily  []DailyTotal              `json:"daily"`
	Cursor *time.Time                `json:"cursor,omitempty"`

	Summary              Summary         `json:"summary"`
	CategoryDistribution []CategoryTotal `json:"category_distribution"`
	ActivityProfile      []HourProfile   `json:"activity_profile"`
	TopApps              []DailyTotal    `json:"top_apps"`
}

// NewResult returns an empty Result with initialized maps.
func NewResult() *Result {
	r := &Result{
		Apps:   make(map[uuid.UUID]AppMetadata),
		Hourly: make(map[int][]*HourlyEntry),
		Daily:  []DailyTotal{},
	}
	r.Summarize(nil)

	return r
}

// ResolveZone loads an IANA zone. Empty names and "Local" are rejected.
func ResolveZone(name string) (*time.Location, bool) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}

	return loc, true
}

// HourSlice is a piece of an interval attributed to a local hour (0-23).
type HourSlice struct {
	Hour     int
	Interval interval.Interval
}

// SplitByHour cuts iv at every local-hour boundary of loc. Boundaries come from the
// wall clock, so hours that DST shortens or lengthens are handled.
func SplitByHour(iv interval.Interval, loc *time.Location) []HourSlice {
	var slices []HourSlice
	cursor := iv.Start
	for cursor.Before(iv.End) {
		local := cursor.In(loc)
		step := untilNextHour(local)
		next := cursor.Add(step)
		if next.After(iv.End) {
			next = iv.End
		}
		slices = append(slices, HourSlice{
			Hour:     local.Hour(),
			Interval: interval.Interval{Start: cursor, End: next},
		})
		cursor = next
	}

	return slices
}

func untilNextHour(local time.Time) time.Duration {
	elapsed := time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())

	return time.Hour - elapsed
}

// Build aggregates timelines in loc. Apps whose ids are in known are left out of Result.Apps.
func Build(timelines []*entity.TimelineDetail, loc *time.Location, known map[uuid.UUID]struct{}) *Result {
	result := NewResult()

	ordered := make([]*entity.TimelineDetail, len(timelines))
	copy(ordered, timelines)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.Interval.Start.Equal(b.Interval.Start) {
			return a.Interval.Start.Before(b.Interval.Start)
		}
		if !a.Interval.End.Equal(b.Interval.End) {
			return a.Interval.End.Before(b.Interval.End)
		}

		return bytes.Compare(a.TimelineID[:], b.TimelineID[:]) < 0
	})

	byHour := make(map[int]map[uuid.UUID]*HourlyEntry)
	daily := make(map[uuid.UUID]int64)
	platforms := make(map[uuid.UUID]map[entity.Platform]struct{})
	categories := make(map[uuid.UUID]entity.Category)

	for _, tl := range ordered {
		appID := tl.App.ID
		categories[appID] = tl.App.Category
		if tl.DevicePlatform != "" {
			if _, ok := platforms[appID]; !ok {
				platforms[appID] = make(map[entity.Platform]struct{})
			}
			platforms[appID][tl.DevicePlatform] = struct{}{}
		}
		if _, ok := known[appID]; !ok {
			result.Apps[appID] = AppMetadata{
				ID:            appID,
				Name:          tl.App.Name,
				Category:      tl.App.Category,
				AutoSuggested: tl.App.AutoSuggested,
			}
		}

		for _, slice := range SplitByHour(tl.Interval, loc) {
			entries, ok := byHour[slice.Hour]
			if !ok {
				entries = make(map[uuid.UUID]*HourlyEntry)
				byHour[slice.Hour] = entries
			}
			entry, ok := entries[appID]
			if !ok {
				entry = &HourlyEntry{AppID: appID}
				entries[appID] = entry
			}

			ms := slice.Interval.Duration().Milliseconds()
			entry.Timelines = append(entry.Timelines, Segment{
				Start:    slice.Interval.Start,
				End:      slice.Interval.End,
				DeviceID: tl.DeviceID,
			})
			entry.TotalTimeMs += ms
			daily[appID] += ms
		}

		if result.Cursor == nil || tl.Interval.End.After(*result.Cursor) {
			end := tl.Interval.End
			result.Cursor = &end
		}
	}

	for hour, entries := range byHour {
		list := make([]*HourlyEntry, 0, len(entries))
		for _, entry := range entries {
			list = append(list, entry)
		}
		result.Hourly[hour] = list
	}
	for appID, total := range daily {
		result.Daily = append(result.Daily, DailyTotal{
			AppID:       appID,
			TotalTimeMs: total,
			Platforms:   SortedPlatforms(platforms[appID]),
		})
	}

	result.Normalize()
	result.Summarize(categories)

	return result
}

// SortedPlatforms returns the members of set in ascending order, nil when it is empty.
func SortedPlatforms(set map[entity.Platform]struct{}) []entity.Platform {
	if len(set) == 0 {
		return nil
	}

	list := make([]entity.Platform, 0, len(set))
	for p := range set {
		list = append(list, p)
	}
	slices.Sort(list)

	return list
}

// Normalize puts every slice of r in canonical order so equal data compares equal.
func (r *Result) Normalize() {
	for _, entries := range r.Hourly {
		for _, entry := range entries {
			sortSegments(entry.Timelines)
		}
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].TotalTimeMs != entries[j].TotalTimeMs {
				return entries[i].TotalTimeMs > entries[j].TotalTimeMs
			}

			return bytes.Compare(entries[i].AppID[:], entries[j].AppID[:]) < 0
		})
	}

	sort.SliceStable(r.Daily, func(i, j int) bool {
		if r.Daily[i].TotalTimeMs != r.Daily[j].TotalTimeMs {
			return r.Daily[i].TotalTimeMs > r.Daily[j].TotalTimeMs
		}

		return bytes.Compare(r.Daily[i].AppID[:], r.Daily[j].AppID[:]) < 0
	})
}

func sortSegments(segments []Segment) {
	sort.SliceStable(segments, func(i, j int) bool {
		a, b := segments[i], segments[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}

		return bytes.Compare(a.DeviceID[:], b.DeviceID[:]) < 0
	})
}
