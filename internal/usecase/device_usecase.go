package usecase

import (
	"context"

	"tempo/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceUsecase defines the read operations on a user's reporting devices
type DeviceUsecase interface {
	// GetUserDevices retrieves all devices claimed by a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)
}
