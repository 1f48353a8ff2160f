package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrDeviceNotFound is returned when a device is not found
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceUnauthorized is returned when a user tries to access a device they don't own
	ErrDeviceUnauthorized = errors.New("unauthorized to access this device")
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	statusRepo repository.DeviceStatusRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	statusRepo repository.DeviceStatusRepository,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		statusRepo: statusRepo,
	}
}

// RegisterDevice registers a new device or updates an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	// Check if device already exists for this user
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by user: %w", err)
	}

	// Look for existing device with same device_id
	for _, device := range devices {
		if device.DeviceID == deviceInfo.DeviceID {
			// Update push token for existing device
			if err := s.deviceRepo.UpdatePushToken(ctx, device.ID, deviceInfo.PushToken); err != nil {
				return nil, fmt.Errorf("failed to update push token: %w", err)
			}
			// Fetch and return updated device
			updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to find device by ID: %w", err)
			}

			return updatedDevice, nil
		}
	}

	// Create new device
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		PushToken: deviceInfo.PushToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return device, nil
}

// UpdatePushToken updates the push token for a specific device
func (s *deviceService) UpdatePushToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, pushToken string) error {
	// Fetch device to verify ownership
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return ErrDeviceNotFound
		}

		return fmt.Errorf("failed to find device by ID: %w", err)
	}

	// Verify ownership
	if device.UserID != userID {
		return ErrDeviceUnauthorized
	}

	if err := s.deviceRepo.UpdatePushToken(ctx, deviceID, pushToken); err != nil {
		return fmt.Errorf("failed to update push token: %w", err)
	}

	return nil
}

// GetUserDevices retrieves all devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by user: %w", err)
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	// Fetch device to verify ownership
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return ErrDeviceNotFound
		}

		return fmt.Errorf("failed to find device by ID: %w", err)
	}

	// Verify ownership
	if device.UserID != userID {
		return ErrDeviceUnauthorized
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}

// Heartbeat upserts the (user, app surface) liveness row.
func (s *deviceService) Heartbeat(ctx context.Context, userID uuid.UUID, input usecase.HeartbeatInput) (*entity.DeviceStatus, error) {
	if !input.AppType.IsValid() {
		return nil, fmt.Errorf("invalid app type: %s", input.AppType)
	}

	now := time.Now()
	status := &entity.DeviceStatus{
		ID:         uuid.New(),
		UserID:     userID,
		AppType:    input.AppType,
		AppVersion: input.AppVersion,
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.statusRepo.UpsertStatus(ctx, status); err != nil {
		return nil, fmt.Errorf("failed to upsert device status: %w", err)
	}

	return status, nil
}
