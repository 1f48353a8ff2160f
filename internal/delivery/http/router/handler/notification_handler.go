package handler

import (
	"net/http"

	"fleet/internal/delivery/http/response"
	"fleet/internal/domain/constants"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

type sendNotificationRequest struct {
	RecipientIDs []string          `json:"recipient_ids" validate:"required,min=1,dive,uuid"`
	Title        string            `json:"title" validate:"required"`
	Body         string            `json:"body" validate:"required"`
	Data         map[string]string `json:"data"`
}

// SendNotification fans a push notification out to the given recipients and
// returns per-recipient delivery outcomes.
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var req sendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	recipientIDs := make([]uuid.UUID, 0, len(req.RecipientIDs))
	for _, idStr := range req.RecipientIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid recipient ID")
		}
		recipientIDs = append(recipientIDs, id)
	}

	output, err := h.uc.SendNotification(c.Request().Context(), usecase.SendNotificationInput{
		RecipientIDs: recipientIDs,
		Title:        req.Title,
		Body:         req.Body,
		Data:         req.Data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Notification batch processed")
}

// ListNotifications returns the caller's in-app notifications.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	unreadOnly := c.QueryParam("unread_only") == "true"

	notifications, err := h.uc.ListNotifications(c.Request().Context(), userID, unreadOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// MarkRead flips the read flag on one of the caller's notifications.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}
