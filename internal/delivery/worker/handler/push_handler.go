// Package handler processes Pub/Sub push deliveries for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fleet/config"
	deliverycontext "fleet/internal/delivery/context"
	"fleet/internal/domain/constants"
	"fleet/internal/domain/entity"
	"fleet/internal/domain/service"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler turns job lifecycle events into driver notifications.
type PushHandler struct {
	verifyPushAuth  bool
	pushAudience    string
	logger          *slog.Logger
	notificationSvc usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google-delivered pushes carry an OIDC token; local development does not
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.IsProduction()

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		pushAudience:    audience,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.JobEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse job event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(c, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing job event",
		slog.String("event_type", event.EventType),
		slog.String("job_id", event.JobID.String()),
		slog.String("status", event.Status),
	)

	if err := h.processJobEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process job event",
			slog.String("job_id", event.JobID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub redelivery; anything non-retryable is acked
		// with 200 to stop the loop
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the Pub/Sub attribute, then the event field, then
// whatever the request middleware put on the context.
func (h *PushHandler) extractRequestID(c echo.Context, pushMsg *PubSubMessage, event *service.JobEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestID(c); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processJobEvent notifies the affected driver about the lifecycle change.
// Events that concern nobody ack silently; notification failures are
// retryable because the fan-out is idempotent enough to rerun.
func (h *PushHandler) processJobEvent(ctx context.Context, event *service.JobEvent) error {
	var title, body string

	switch event.EventType {
	case constants.JobEventAssigned:
		if event.DriverID == nil {
			return errors.New("assigned event missing driver id")
		}
		title = "New job assigned"
		body = fmt.Sprintf("Job %s has been assigned to you", event.Reference)

	case constants.JobEventStatusChanged:
		// Drivers only care when a job is pulled out from under them
		if event.Status != entity.JobStatusCancelled.String() || event.DriverID == nil {
			return nil
		}
		title = "Job cancelled"
		body = fmt.Sprintf("Job %s has been cancelled", event.Reference)

	default:
		h.logger.Warn("[Worker] Unknown job event type", slog.String("event_type", event.EventType))

		return nil
	}

	_, err := h.notificationSvc.SendNotification(ctx, usecase.SendNotificationInput{
		RecipientIDs: []uuid.UUID{*event.DriverID},
		Title:        title,
		Body:         body,
		Data: map[string]string{
			"job_id":    event.JobID.String(),
			"reference": event.Reference,
			"status":    event.Status,
		},
	})
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// verifyPubSubToken verifies the OIDC token on Google Pub/Sub push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The configured audience wins; otherwise fall back to this endpoint's URL
	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
