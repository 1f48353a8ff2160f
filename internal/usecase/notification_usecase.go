package usecase

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
)

// SendNotificationInput defines a notification fan-out request.
type SendNotificationInput struct {
	RecipientIDs []uuid.UUID
	Title        string
	Body         string
	Data         map[string]string
}

// RecipientResult records the outcome for one recipient. The in-app row is
// written regardless of push delivery; Success refers to push only.
type RecipientResult struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	Success     bool      `json:"success"`
	Reason      string    `json:"reason,omitempty"`
}

// SendNotificationOutput summarizes a fan-out.
type SendNotificationOutput struct {
	Provider  string            `json:"provider"`
	TotalSent int               `json:"total_sent"`
	Results   []RecipientResult `json:"results"`
}

// NotificationUsecase defines the interface for notification business operations.
type NotificationUsecase interface {
	// SendNotification delivers a push to every recipient's active devices and
	// inserts one in-app notification row per recipient. Per-recipient push
	// failures are recorded, never retried, and never abort the batch.
	SendNotification(ctx context.Context, input SendNotificationInput) (*SendNotificationOutput, error)

	// ListNotifications retrieves a recipient's in-app notifications, newest
	// first. unreadOnly restricts to unread rows.
	ListNotifications(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error)

	// MarkRead flips the read flag on a notification owned by recipientID.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
}
