package repository

import (
	"context"
	"time"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for push-device database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its primary key.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices for a specific user (including inactive).
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUsers retrieves all active devices for a set of users.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// UpdatePushToken updates the push token for a specific device.
	UpdatePushToken(ctx context.Context, deviceID uuid.UUID, pushToken string) error

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}

// DeviceStatusRepository defines the interface for heartbeat liveness rows.
type DeviceStatusRepository interface {
	// UpsertStatus inserts or refreshes the (user, app_type) liveness row.
	// The row count for a pair never exceeds one.
	UpsertStatus(ctx context.Context, status *entity.DeviceStatus) error

	// FindStatus retrieves the liveness row for a (user, app_type) pair.
	FindStatus(ctx context.Context, userID uuid.UUID, appType entity.AppType) (*entity.DeviceStatus, error)

	// CountSeenSince returns the number of rows with last_seen_at after the cutoff.
	CountSeenSince(ctx context.Context, appType entity.AppType, since time.Time) (int64, error)
}
