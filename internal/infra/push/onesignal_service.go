package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fleet/config"
	"fleet/internal/domain/service"
)

const onesignalEndpoint = "https://onesignal.com/api/v1/notifications"

// onesignalService delivers pushes through the OneSignal REST API. Tokens are
// OneSignal player IDs here, not FCM registration tokens.
type onesignalService struct {
	appID      string
	apiKey     string
	httpClient *http.Client
}

// NewOneSignalService creates a new OneSignal push service instance
func NewOneSignalService(cfg *config.OneSignalConfig) service.PushService {
	return &onesignalService{
		appID:  cfg.AppID,
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name identifies the provider in logs and per-recipient results.
func (s *onesignalService) Name() string {
	return "onesignal"
}

type onesignalRequest struct {
	AppID            string            `json:"app_id"`
	IncludePlayerIDs []string          `json:"include_player_ids"`
	Headings         map[string]string `json:"headings"`
	Contents         map[string]string `json:"contents"`
	Data             map[string]string `json:"data,omitempty"`
}

type onesignalResponse struct {
	ID         string   `json:"id"`
	Recipients int      `json:"recipients"`
	Errors     struct {
		InvalidPlayerIDs []string `json:"invalid_player_ids"`
	} `json:"errors"`
}

// SendSingleNotification sends a push notification to a single player ID
func (s *onesignalService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	_, failureCount, _, err := s.SendBatchNotification(ctx, []string{token}, title, body, data)
	if err != nil {
		return err
	}
	if failureCount > 0 {
		return fmt.Errorf("onesignal rejected player id %s", token)
	}

	return nil
}

// SendBatchNotification sends push notifications to multiple player IDs
func (s *onesignalService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	payload, err := json.Marshal(onesignalRequest{
		AppID:            s.appID,
		IncludePlayerIDs: tokens,
		Headings:         map[string]string{"en": title},
		Contents:         map[string]string{"en": body},
		Data:             data,
	})
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to marshal onesignal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, onesignalEndpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to build onesignal request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("onesignal request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to read onesignal response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, len(tokens), nil, fmt.Errorf("onesignal returned status %d: %s", resp.StatusCode, respBody)
	}

	var result onesignalResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return 0, 0, nil, fmt.Errorf("failed to decode onesignal response: %w", err)
	}

	invalidTokens = result.Errors.InvalidPlayerIDs
	failureCount = len(invalidTokens)
	successCount = len(tokens) - failureCount

	return successCount, failureCount, invalidTokens, nil
}
