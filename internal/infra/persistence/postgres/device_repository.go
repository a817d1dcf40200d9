package postgres

import (
	"context"

	"tempo/internal/domain/entity"
	domainerrors "tempo/internal/domain/errors"
	"tempo/internal/domain/repository"
	"tempo/internal/infra/persistence/model"
	"tempo/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	q *query.Query
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		q: query.Use(db),
	}
}

// FindByExternalID retrieves a device by the agent-supplied identifier.
func (repo *deviceRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Device, error) {
	deviceM, err := repo.q.DeviceModel.WithContext(ctx).
		Where(repo.q.DeviceModel.ExternalID.Eq(externalID)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by external ID")
	}

	return toDeviceDomain(deviceM), nil
}

// Create persists a new device.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.q.DeviceModel.WithContext(ctx).Create(deviceM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// Claim assigns an owner to a device that has none.
func (repo *deviceRepository) Claim(ctx context.Context, deviceID, userID uuid.UUID) error {
	result, err := repo.q.DeviceModel.WithContext(ctx).
		Where(
			repo.q.DeviceModel.ID.Eq(deviceID),
			repo.q.DeviceModel.UserID.IsNull(),
		).
		Update(repo.q.DeviceModel.UserID, userID)

	if err != nil {
		return errors.Wrap(err, "failed to claim device")
	}

	if result.RowsAffected == 0 {
		count, err := repo.q.DeviceModel.WithContext(ctx).
			Where(repo.q.DeviceModel.ID.Eq(deviceID)).
			Count()
		if err != nil {
			return errors.Wrap(err, "failed to check device")
		}
		if count == 0 {
			return repository.ErrDeviceNotFound
		}

		return repository.ErrDeviceAlreadyOwned
	}

	return nil
}

// FindByUser retrieves all devices owned by a user.
func (repo *deviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	deviceModels, err := repo.q.DeviceModel.WithContext(ctx).
		Where(repo.q.DeviceModel.UserID.Eq(userID)).
		Order(repo.q.DeviceModel.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:         data.ID,
		ExternalID: data.ExternalID,
		Platform:   entity.Platform(data.Platform),
		UserID:     data.UserID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:         data.ID,
		ExternalID: data.ExternalID,
		Platform:   data.Platform.String(),
		UserID:     data.UserID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
