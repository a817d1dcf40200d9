// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is a reporting agent (desktop tracker, mobile app, browser extension).
type Device struct {
	ID         uuid.UUID  `json:"id"`          // Internal identifier.
	ExternalID string     `json:"external_id"` // Identifier supplied by the agent, unique across all devices.
	Platform   Platform   `json:"platform"`    // Fixed when the device is first seen.
	UserID     *uuid.UUID `json:"user_id"`     // Owning user, nil until the device is claimed.
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IsClaimed reports whether any user owns the device.
func (d *Device) IsClaimed() bool {
	return d.UserID != nil && *d.UserID != uuid.Nil
}

// OwnedBy reports whether userID owns the device.
func (d *Device) OwnedBy(userID uuid.UUID) bool {
	return d.IsClaimed() && *d.UserID == userID
}
