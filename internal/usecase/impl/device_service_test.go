package impl

import (
	"context"
	"testing"

	"fleet/internal/domain/entity"
	mockRepo "fleet/internal/mocks/repository"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	statusRepo *mockRepo.MockDeviceStatusRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	statusRepo := mockRepo.NewMockDeviceStatusRepository(t)
	service := NewDeviceService(deviceRepo, statusRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
		statusRepo: statusRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		PushToken: "test-push-token",
		DeviceID:  "device-123",
		Platform:  "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.PushToken, device.PushToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.UserDevice{
		ID:        deviceID,
		UserID:    userID,
		PushToken: "old-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		IsActive:  true,
	}

	deviceInfo := &usecase.DeviceInfo{
		PushToken: "new-push-token",
		DeviceID:  "device-123",
		Platform:  "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existingDevice}, nil)

	fx.deviceRepo.EXPECT().
		UpdatePushToken(ctx, deviceID, "new-push-token").
		Return(nil)

	updatedDevice := &entity.UserDevice{
		ID:        deviceID,
		UserID:    userID,
		PushToken: "new-push-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		IsActive:  true,
	}
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, "new-push-token", device.PushToken)
	fx.deviceRepo.AssertNotCalled(t, "CreateDevice", mock.Anything, mock.Anything)
}

func TestDeviceService_UpdatePushToken_NotOwner(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.UpdatePushToken(ctx, userID, deviceID, "new-token")
	assert.Error(t, err)
	assert.Equal(t, ErrDeviceUnauthorized, err)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID, IsActive: true}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	err := fx.service.DeactivateDevice(ctx, userID, deviceID)
	assert.NoError(t, err)
}

func TestDeviceService_GetUserDevices_Error(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, errors.New("db error"))

	devices, err := fx.service.GetUserDevices(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, devices)
}

func TestDeviceService_Heartbeat_UpsertsStatus(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.statusRepo.EXPECT().
		UpsertStatus(ctx, mock.AnythingOfType("*entity.DeviceStatus")).
		Run(func(_ context.Context, status *entity.DeviceStatus) {
			assert.Equal(t, userID, status.UserID)
			assert.Equal(t, entity.AppTypeMobile, status.AppType)
			assert.Equal(t, "2.4.0", status.AppVersion)
		}).
		Return(nil)

	status, err := fx.service.Heartbeat(ctx, userID, usecase.HeartbeatInput{
		AppType:    entity.AppTypeMobile,
		AppVersion: "2.4.0",
	})
	require.NoError(t, err)
	assert.False(t, status.LastSeenAt.IsZero())
}

func TestDeviceService_Heartbeat_InvalidAppType(t *testing.T) {
	fx := createTestDeviceService(t)

	status, err := fx.service.Heartbeat(context.Background(), uuid.New(), usecase.HeartbeatInput{
		AppType: entity.AppType("desktop"),
	})
	assert.Error(t, err)
	assert.Nil(t, status)
	fx.statusRepo.AssertNotCalled(t, "UpsertStatus", mock.Anything, mock.Anything)
}
