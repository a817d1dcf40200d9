package model

import (
	"time"

	"github.com/google/uuid"
)

// AppModel is the GORM-specific struct for the 'apps' table.
type AppModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Category      string    `gorm:"type:varchar(20);not null;default:'uncategorized'"`
	AutoSuggested bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppModel) TableName() string {
	return "apps"
}
