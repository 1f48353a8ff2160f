package ratelimit

import (
	"context"
	"log/slog"

	"fleet/config"
	"fleet/internal/domain/lifecycle"
	"fleet/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the limiter backing the request middleware. With a Redis
// connection configured the window counters are shared across instances;
// without one each process keeps its own map.
func New(params Params) (Limiter, error) {
	cfg := params.Config.RateLimit

	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Warn("redis not configured, rate limit counters are per-process")

		return NewMemoryLimiter(cfg), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLimiter(cfg, client), nil
}
