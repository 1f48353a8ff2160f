package main

import (
	"context"
	"log/slog"
	"os"

	"fleet/config"
	"fleet/internal/delivery"
	"fleet/internal/delivery/http"
	"fleet/internal/delivery/http/middleware"
	"fleet/internal/delivery/http/router/handler"
	"fleet/internal/domain/service"
	"fleet/internal/infra/auth"
	logs "fleet/internal/infra/log"
	"fleet/internal/infra/persistence/postgres"
	"fleet/internal/infra/pubsub"
	"fleet/internal/infra/push"
	"fleet/internal/infra/qrcode"
	"fleet/internal/infra/ratelimit"
	"fleet/internal/infra/routing"
	"fleet/internal/infra/storage"
	"fleet/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		ratelimit.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewJobRepository,
			postgres.NewTimeLogRepository,
			postgres.NewLocationRepository,
			postgres.NewAttachmentRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewDeviceStatusRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			push.New,
			storage.New,
			routing.New,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewJobService,
			impl.NewLocationService,
			impl.NewDeviceService,
			impl.NewNotificationService,
			impl.NewAttachmentService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewCORSMiddleware,
			middleware.NewRateLimitMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSystemHandler,
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewJobHandler,
			handler.NewLocationHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
			handler.NewAttachmentHandler,
			handler.NewStatsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
