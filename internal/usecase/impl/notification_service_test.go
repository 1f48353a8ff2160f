package impl

import (
	"context"
	"testing"

	"fleet/internal/domain/entity"
	mockRepo "fleet/internal/mocks/repository"
	mockSvc "fleet/internal/mocks/service"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	profileRepo      *mockRepo.MockProfileRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	pushService      *mockSvc.MockPushService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushService := mockSvc.NewMockPushService(t)

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		ProfileRepo:      profileRepo,
		DeviceRepo:       deviceRepo,
		PushService:      pushService,
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		deviceRepo:       deviceRepo,
		pushService:      pushService,
	}
}

func TestNotificationService_SendNotification_Delivered(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	profile := &entity.Profile{
		ID:                   recipientID,
		Role:                 entity.RoleDriver,
		NotificationsEnabled: true,
		IsActive:             true,
	}
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    recipientID,
		PushToken: "token-1",
		IsActive:  true,
	}

	fx.profileRepo.EXPECT().
		FindProfilesByIDs(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.Profile{profile}, nil)

	fx.pushService.EXPECT().Name().Return("fcm")

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{device}, nil)

	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, "New job", "You have a new load", mock.Anything).
		Return(1, 0, nil, nil)

	output, err := fx.service.SendNotification(ctx, usecase.SendNotificationInput{
		RecipientIDs: []uuid.UUID{recipientID},
		Title:        "New job",
		Body:         "You have a new load",
	})
	require.NoError(t, err)
	assert.Equal(t, "fcm", output.Provider)
	assert.Equal(t, 1, output.TotalSent)
	require.Len(t, output.Results, 1)
	assert.True(t, output.Results[0].Success)
}

func TestNotificationService_SendNotification_DisabledRecipientStillGetsRow(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	profile := &entity.Profile{
		ID:                   recipientID,
		NotificationsEnabled: false,
		IsActive:             true,
	}

	fx.profileRepo.EXPECT().
		FindProfilesByIDs(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.Profile{profile}, nil)

	fx.pushService.EXPECT().Name().Return("fcm")

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			assert.Equal(t, recipientID, notification.RecipientID)
			assert.False(t, notification.Read)
		}).
		Return(nil)

	output, err := fx.service.SendNotification(ctx, usecase.SendNotificationInput{
		RecipientIDs: []uuid.UUID{recipientID},
		Title:        "Schedule change",
		Body:         "Your route was updated",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, output.TotalSent)
	require.Len(t, output.Results, 1)
	assert.False(t, output.Results[0].Success)
	assert.Equal(t, "notifications_disabled", output.Results[0].Reason)
	fx.deviceRepo.AssertNotCalled(t, "FindActiveDevicesByUsers", mock.Anything, mock.Anything)
}

func TestNotificationService_SendNotification_MissingProfileSkipsRow(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfilesByIDs(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.Profile{}, nil)

	fx.pushService.EXPECT().Name().Return("fcm")

	output, err := fx.service.SendNotification(ctx, usecase.SendNotificationInput{
		RecipientIDs: []uuid.UUID{recipientID},
		Title:        "Hello",
		Body:         "World",
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	assert.False(t, output.Results[0].Success)
	assert.Equal(t, "profile_not_found", output.Results[0].Reason)
	fx.notificationRepo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestNotificationService_SendNotification_InvalidTokenDeregistersDevice(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	deviceID := uuid.New()
	profile := &entity.Profile{
		ID:                   recipientID,
		NotificationsEnabled: true,
		IsActive:             true,
	}
	device := &entity.UserDevice{
		ID:        deviceID,
		UserID:    recipientID,
		PushToken: "stale-token",
		IsActive:  true,
	}

	fx.profileRepo.EXPECT().
		FindProfilesByIDs(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.Profile{profile}, nil)

	fx.pushService.EXPECT().Name().Return("fcm")

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{device}, nil)

	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"stale-token"}, "Hello", "World", mock.Anything).
		Return(0, 1, []string{"stale-token"}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	output, err := fx.service.SendNotification(ctx, usecase.SendNotificationInput{
		RecipientIDs: []uuid.UUID{recipientID},
		Title:        "Hello",
		Body:         "World",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, output.TotalSent)
	require.Len(t, output.Results, 1)
	assert.Equal(t, "push_failed", output.Results[0].Reason)
}

func TestNotificationService_SendNotification_BatchFailureDoesNotAbort(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	profile := &entity.Profile{
		ID:                   recipientID,
		NotificationsEnabled: true,
		IsActive:             true,
	}
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    recipientID,
		PushToken: "token-1",
		IsActive:  true,
	}

	fx.profileRepo.EXPECT().
		FindProfilesByIDs(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.Profile{profile}, nil)

	fx.pushService.EXPECT().Name().Return("fcm")

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{device}, nil)

	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, "Hello", "World", mock.Anything).
		Return(0, 0, nil, errors.New("provider unavailable"))

	output, err := fx.service.SendNotification(ctx, usecase.SendNotificationInput{
		RecipientIDs: []uuid.UUID{recipientID},
		Title:        "Hello",
		Body:         "World",
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	assert.False(t, output.Results[0].Success)
	assert.Equal(t, "push_failed", output.Results[0].Reason)
}

func TestNotificationService_ListNotifications(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	rows := []*entity.Notification{
		{ID: uuid.New(), RecipientID: recipientID, Title: "A"},
		{ID: uuid.New(), RecipientID: recipientID, Title: "B"},
	}

	fx.notificationRepo.EXPECT().
		FindNotificationsByRecipient(ctx, recipientID, true).
		Return(rows, nil)

	notifications, err := fx.service.ListNotifications(ctx, recipientID, true)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func TestNotificationService_MarkRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()
	recipientID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, id, recipientID).
		Return(nil)

	err := fx.service.MarkRead(ctx, id, recipientID)
	assert.NoError(t, err)
}
