package repository

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification row is missing.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for in-app notification rows.
type NotificationRepository interface {
	// CreateNotification persists a new notification row.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByRecipient retrieves notifications for a recipient,
	// newest first. unreadOnly restricts to unread rows.
	FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error)

	// MarkRead flips the read flag for a notification owned by recipientID.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
}
