package push

import (
	"context"
	"log/slog"

	"fleet/config"
	"fleet/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New selects the active push provider. First configured wins: FCM when
// Firebase credentials are present, otherwise OneSignal, otherwise a no-op
// provider so notification rows are still written without push delivery.
func New(params Params) (service.PushService, error) {
	if params.Config.Firebase != nil && params.Config.Firebase.CredentialsPath != "" {
		svc, err := NewFirebaseService(context.Background(), params.Config.Firebase.CredentialsPath)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("push provider selected", slog.String("provider", svc.Name()))

		return svc, nil
	}

	if params.Config.OneSignal != nil && params.Config.OneSignal.AppID != "" {
		svc := NewOneSignalService(params.Config.OneSignal)
		params.Logger.Info("push provider selected", slog.String("provider", svc.Name()))

		return svc, nil
	}

	params.Logger.Warn("no push provider configured, deliveries will be skipped")

	return NewNoopService(), nil
}

// noopService satisfies the provider interface when no credentials exist.
// Batch deliveries are reported as failures so callers still record the
// per-recipient outcome.
type noopService struct{}

// NewNoopService creates the placeholder provider.
func NewNoopService() service.PushService {
	return &noopService{}
}

func (s *noopService) Name() string {
	return "none"
}

func (s *noopService) SendSingleNotification(_ context.Context, _, _, _ string, _ map[string]string) error {
	return nil
}

func (s *noopService) SendBatchNotification(_ context.Context, tokens []string, _, _ string, _ map[string]string) (int, int, []string, error) {
	return 0, len(tokens), nil, nil
}
