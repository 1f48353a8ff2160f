package handler

import (
	"net/http"

	"fleet/internal/delivery/http/response"
	"fleet/internal/domain/constants"
	"fleet/internal/domain/entity"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device registration handlers.
type DeviceHandler struct {
	uc usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{uc: uc}
}

type registerDeviceRequest struct {
	PushToken string `json:"push_token" validate:"required"`
	DeviceID  string `json:"device_id" validate:"required"`
	Platform  string `json:"platform" validate:"required,oneof=ios android web"`
}

// RegisterDevice registers the caller's device for push notifications.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		PushToken: req.PushToken,
		DeviceID:  req.DeviceID,
		Platform:  req.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// ListDevices returns the caller's registered devices.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.uc.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

type updatePushTokenRequest struct {
	PushToken string `json:"push_token" validate:"required"`
}

// UpdatePushToken rotates the push token on one of the caller's devices.
func (h *DeviceHandler) UpdatePushToken(c echo.Context) error {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	var req updatePushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdatePushToken(c.Request().Context(), userID, deviceID, req.PushToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Push token updated successfully")
}

// DeactivateDevice unregisters one of the caller's devices.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	if err := h.uc.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deactivated successfully")
}

type heartbeatRequest struct {
	AppType    string `json:"app_type" validate:"required,oneof=mobile web"`
	AppVersion string `json:"app_version"`
}

// Heartbeat upserts the caller's last-seen record for one client surface.
func (h *DeviceHandler) Heartbeat(c echo.Context) error {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req heartbeatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid heartbeat input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	status, err := h.uc.Heartbeat(c.Request().Context(), userID, usecase.HeartbeatInput{
		AppType:    entity.AppType(req.AppType),
		AppVersion: req.AppVersion,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "Heartbeat recorded")
}
