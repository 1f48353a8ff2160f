package middleware

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"fleet/config"
	"fleet/internal/delivery/http/response"
	"fleet/internal/domain/constants"
	"fleet/internal/infra/ratelimit"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware enforces the fixed-window request limit per caller.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	logger  *slog.Logger
	enabled bool
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter ratelimit.Limiter, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
		enabled: cfg.RateLimit != nil && cfg.RateLimit.Enabled,
	}
}

// Handle checks the caller's window before the handler runs. Limiter errors
// fail open: a broken Redis connection must not take the API down with it.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled || m.limiter == nil {
			return next(c)
		}

		identifier := deriveIdentifier(c)

		result, err := m.limiter.Allow(c.Request().Context(), identifier)
		if err != nil {
			m.logger.Warn("rate limiter check failed, allowing request",
				slog.String("identifier", identifier),
				slog.Any("error", err),
			)

			return next(c)
		}

		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		header.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			// Round up so a window with under a second left still tells the
			// client to wait.
			retryAfter := int((result.RetryAfter(time.Now()) + time.Second - 1) / time.Second)
			header.Set("Retry-After", strconv.Itoa(retryAfter))

			return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests")
		}

		return next(c)
	}
}

// deriveIdentifier keys the window on the authenticated user when present,
// falling back to the caller's IP. Proxy-less anonymous callers all share
// the "unknown" bucket.
func deriveIdentifier(c echo.Context) string {
	if userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID); ok {
		return "user:" + userID.String()
	}

	if forwarded := c.Request().Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return "ip:" + ip
		}
	}

	if realIP := c.Request().Header.Get("X-Real-IP"); realIP != "" {
		return "ip:" + realIP
	}

	return "unknown"
}
