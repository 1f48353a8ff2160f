package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the device registration.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the profile who owns this device.
	PushToken string    `json:"push_token"` // FCM registration token (or OneSignal player ID).
	DeviceID  string    `json:"device_id"`  // Unique device identifier from the client.
	Platform  string    `json:"platform"`   // Device platform (ios, android).
	IsActive  bool      `json:"is_active"`  // Indicates if this device is active for notifications.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this device was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// AppType distinguishes which client surface reported a heartbeat.
type AppType string

const (
	// AppTypeMobile is the driver mobile app.
	AppTypeMobile AppType = "mobile"
	// AppTypeWeb is the admin web panel.
	AppTypeWeb AppType = "web"
)

// IsValid checks if the AppType is a valid value.
func (a AppType) IsValid() bool {
	return a == AppTypeMobile || a == AppTypeWeb
}

// DeviceStatus is the last-seen liveness record for a (user, app surface)
// pair. Exactly one row per pair; heartbeats upsert it.
type DeviceStatus struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	AppType    AppType   `json:"app_type"`
	AppVersion string    `json:"app_version"`
	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
