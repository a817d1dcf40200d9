package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyActivityModel is the GORM-specific struct for the 'daily_activities' table.
type DailyActivityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_activities_device_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_activities_device_date"`
	CreatedAt time.Time

	Device DeviceModel `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DailyActivityModel) TableName() string {
	return "daily_activities"
}

// AppUsageModel is the GORM-specific struct for the 'app_usages' table.
type AppUsageModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DailyActivityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_app_usages_daily_app"`
	AppID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_app_usages_daily_app"`
	TotalTimeMs     int64     `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	DailyActivity DailyActivityModel `gorm:"foreignKey:DailyActivityID;constraint:OnDelete:CASCADE"`
	App           AppModel           `gorm:"foreignKey:AppID"`
}

// TableName explicitly sets the table name for GORM.
func (AppUsageModel) TableName() string {
	return "app_usages"
}

// UsageTimelineModel is the GORM-specific struct for the 'usage_timelines' table.
type UsageTimelineModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AppUsageID uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime  time.Time `gorm:"type:timestamptz(3);not null;index:idx_usage_timelines_window,priority:1"`
	EndTime    time.Time `gorm:"type:timestamptz(3);not null;index:idx_usage_timelines_window,priority:2"`
	CreatedAt  time.Time

	AppUsage AppUsageModel `gorm:"foreignKey:AppUsageID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UsageTimelineModel) TableName() string {
	return "usage_timelines"
}

// TimelineDetailRow is the projection returned by timeline joins.
type TimelineDetailRow struct {
	TimelineID       uuid.UUID
	AppUsageID       uuid.UUID
	DeviceID         uuid.UUID
	DevicePlatform   string
	AppID            uuid.UUID
	AppName          string
	AppCategory      string
	AppAutoSuggested bool
	Date             time.Time
	StartTime        time.Time
	EndTime          time.Time
}
