package impl

import (
	"context"
	"log/slog"
	"time"

	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	pushBatchSize = 500
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	profileRepo      repository.ProfileRepository
	deviceRepo       repository.DeviceRepository
	pushService      service.PushService
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	ProfileRepo      repository.ProfileRepository
	DeviceRepo       repository.DeviceRepository
	PushService      service.PushService
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		profileRepo:      params.ProfileRepo,
		deviceRepo:       params.DeviceRepo,
		pushService:      params.PushService,
		logger:           params.Logger,
	}
}

// SendNotification delivers a push to every recipient's active devices and
// inserts one in-app notification row per recipient. Push failures are
// per-recipient outcomes, never batch aborts, and are not retried.
func (s *notificationService) SendNotification(ctx context.Context, input usecase.SendNotificationInput) (*usecase.SendNotificationOutput, error) {
	profiles, err := s.profileRepo.FindProfilesByIDs(ctx, input.RecipientIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipient profiles")
	}

	profileByID := make(map[uuid.UUID]*entity.Profile, len(profiles))
	for _, profile := range profiles {
		profileByID[profile.ID] = profile
	}

	output := &usecase.SendNotificationOutput{
		Provider: s.pushService.Name(),
		Results:  make([]usecase.RecipientResult, 0, len(input.RecipientIDs)),
	}

	// Recipients whose devices should receive a push.
	pushRecipients := make([]uuid.UUID, 0, len(input.RecipientIDs))
	skippedReason := make(map[uuid.UUID]string)

	for _, recipientID := range input.RecipientIDs {
		profile, ok := profileByID[recipientID]
		if !ok {
			skippedReason[recipientID] = "profile_not_found"

			continue
		}

		// The in-app row is written regardless of push preference or outcome.
		notification := &entity.Notification{
			ID:          uuid.New(),
			RecipientID: recipientID,
			Title:       input.Title,
			Body:        input.Body,
			Data:        input.Data,
			CreatedAt:   time.Now(),
		}
		if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
			s.logger.Error("failed to insert notification row",
				slog.String("recipient_id", recipientID.String()),
				slog.Any("error", err),
			)
			skippedReason[recipientID] = "storage_failed"

			continue
		}

		if !profile.NotificationsEnabled {
			skippedReason[recipientID] = "notifications_disabled"

			continue
		}

		pushRecipients = append(pushRecipients, recipientID)
	}

	delivered := s.pushToDevices(ctx, pushRecipients, input.Title, input.Body, input.Data)

	for _, recipientID := range input.RecipientIDs {
		if reason, skipped := skippedReason[recipientID]; skipped {
			output.Results = append(output.Results, usecase.RecipientResult{
				RecipientID: recipientID,
				Success:     false,
				Reason:      reason,
			})

			continue
		}

		result := usecase.RecipientResult{RecipientID: recipientID}
		if delivered[recipientID] {
			result.Success = true
			output.TotalSent++
		} else {
			result.Reason = "push_failed"
		}
		output.Results = append(output.Results, result)
	}

	return output, nil
}

// pushToDevices fans the push out to every active device of the given
// recipients and reports which recipients had at least one successful send.
func (s *notificationService) pushToDevices(ctx context.Context, recipientIDs []uuid.UUID, title, body string, data map[string]string) map[uuid.UUID]bool {
	delivered := make(map[uuid.UUID]bool)
	if len(recipientIDs) == 0 {
		return delivered
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, recipientIDs)
	if err != nil {
		s.logger.Error("failed to load recipient devices", slog.Any("error", err))

		return delivered
	}
	if len(devices) == 0 {
		return delivered
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.PushToken)
		deviceByToken[device.PushToken] = device
	}

	var invalidTokens []string
	for i := 0; i < len(tokens); i += pushBatchSize {
		end := i + pushBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[i:end]

		_, _, batchInvalid, err := s.pushService.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			// Log and continue with the remaining batches.
			s.logger.Error("push batch failed", slog.Any("error", err))

			continue
		}

		invalidSet := make(map[string]bool, len(batchInvalid))
		for _, token := range batchInvalid {
			invalidSet[token] = true
		}
		for _, token := range batch {
			if invalidSet[token] {
				continue
			}
			delivered[deviceByToken[token].UserID] = true
		}
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	// Deregister devices the provider reported as gone.
	for _, token := range invalidTokens {
		device := deviceByToken[token]
		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			s.logger.Warn("failed to delete invalid device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return delivered
}

// ListNotifications retrieves a recipient's in-app notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.FindNotificationsByRecipient(ctx, recipientID, unreadOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flips the read flag on a notification owned by recipientID.
func (s *notificationService) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, id, recipientID); err != nil {
		return err
	}

	return nil
}
