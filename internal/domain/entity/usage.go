package entity

import (
	"time"

	"tempo/internal/domain/interval"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used for DailyActivity dates.
const DateLayout = "2006-01-02"

// LocalDate returns the calendar date of t in loc as midnight UTC.
func LocalDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DailyActivity groups a device's usage for one local calendar date.
type DailyActivity struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  uuid.UUID `json:"device_id"`
	Date      time.Time `json:"date"` // Midnight UTC of the local date of the reporting request.
	CreatedAt time.Time `json:"created_at"`
}

// AppUsage aggregates an app's time within a DailyActivity.
type AppUsage struct {
	ID              uuid.UUID `json:"id"`
	DailyActivityID uuid.UUID `json:"daily_activity_id"`
	AppID           uuid.UUID `json:"app_id"`
	TotalTimeMs     int64     `json:"total_time_ms"` // Always the sum of its timeline durations.
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UsageTimeline is one concrete interval attributed to an AppUsage.
type UsageTimeline struct {
	ID         uuid.UUID         `json:"id"`
	AppUsageID uuid.UUID         `json:"app_usage_id"`
	Interval   interval.Interval `json:"interval"`
	CreatedAt  time.Time         `json:"created_at"`
}

// TimelineDetail is a UsageTimeline joined with the rows that own it.
type TimelineDetail struct {
	TimelineID     uuid.UUID
	AppUsageID     uuid.UUID
	DeviceID       uuid.UUID
	DevicePlatform Platform
	App            App
	Date           time.Time
	Interval       interval.Interval
}
