// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tempo/internal/domain/entity"
	"tempo/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrDeviceNotFound is returned when no device matches the lookup.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the external id is already registered.
	ErrDuplicateDevice = errors.New("device already exists")
	// ErrDeviceAlreadyOwned is returned when claiming a device that has an owner.
	ErrDeviceAlreadyOwned = errors.New("device already owned")
)

// DeviceRepository defines the persistence operations for reporting devices.
type DeviceRepository interface {
	// FindByExternalID returns the device registered under the agent-supplied id.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Device, error)

	// Create inserts a device and fills its generated fields.
	Create(ctx context.Context, device *entity.Device) error

	// Claim sets the owner of a currently unowned device.
	Claim(ctx context.Context, deviceID, userID uuid.UUID) error

	// FindByUser lists every device owned by userID.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)
}
