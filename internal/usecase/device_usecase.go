package usecase

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	PushToken string `json:"push_token"`
	DeviceID  string `json:"device_id"`
	Platform  string `json:"platform"`
}

// HeartbeatInput is one liveness report from a client surface.
type HeartbeatInput struct {
	AppType    entity.AppType
	AppVersion string
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or updates an existing one
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdatePushToken updates the push token for a specific device
	UpdatePushToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, pushToken string) error

	// GetUserDevices retrieves all devices for a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error

	// Heartbeat upserts the (user, app surface) liveness row. Idempotent: a
	// repeated heartbeat only refreshes last_seen_at and app_version.
	Heartbeat(ctx context.Context, userID uuid.UUID, input HeartbeatInput) (*entity.DeviceStatus, error)
}
