package service

import "context"

// PushService defines the interface for push notification providers.
// Exactly one provider is active per process; the first configured provider
// wins (FCM before OneSignal).
type PushService interface {
	// SendSingleNotification sends a push notification to a single device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error

	// SendBatchNotification sends push notifications to multiple device tokens.
	// Returns success count, failure count, list of invalid tokens, and error.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// Name identifies the provider in logs and per-recipient results.
	Name() string
}
