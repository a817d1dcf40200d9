package impl

import (
	"context"
	"testing"

	"tempo/internal/domain/entity"
	mockRepo "tempo/internal/mocks/repository"
	"tempo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Device{
		{ID: uuid.New(), ExternalID: "mac-1", Platform: entity.PlatformMacOS, UserID: &userID},
		{ID: uuid.New(), ExternalID: "ext-1", Platform: entity.PlatformWeb, UserID: &userID},
	}

	fx.deviceRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_GetUserDevices_Error(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindByUser(ctx, userID).Return(nil, errors.New("db error"))

	devices, err := fx.service.GetUserDevices(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, devices)
	assert.Contains(t, err.Error(), "failed to find devices by user")
}
