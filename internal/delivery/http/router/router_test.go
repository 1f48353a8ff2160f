package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet/config"
	"fleet/internal/delivery/http/middleware"
	"fleet/internal/delivery/http/validator"
	"fleet/internal/domain/entity"
	"fleet/internal/infra/ratelimit"
	mockRepo "fleet/internal/mocks/repository"
	mockSvc "fleet/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingLimiter struct {
	identifier string
	result     *ratelimit.Result
}

func (l *recordingLimiter) Allow(_ context.Context, identifier string) (*ratelimit.Result, error) {
	l.identifier = identifier

	return l.result, nil
}

type routerFixtures struct {
	echo        *echo.Echo
	limiter     *recordingLimiter
	tokenSvc    *mockSvc.MockTokenService
	profileRepo *mockRepo.MockProfileRepository
}

// createTestRouter wires the real route table with the real auth and rate
// limit middleware around mocked token/profile lookups and a recording
// limiter that denies every request, so middleware ordering can be observed
// without reaching the handlers.
func createTestRouter(t *testing.T) routerFixtures {
	t.Helper()

	tokenSvc := mockSvc.NewMockTokenService(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	limiter := &recordingLimiter{
		result: &ratelimit.Result{
			Allowed:   false,
			Limit:     100,
			Remaining: 0,
			ResetAt:   time.Now().Add(time.Minute),
		},
	}
	cfg := &config.Config{}
	cfg.RateLimit = &config.RateLimitConfig{Enabled: true, MaxRequests: 100, Window: time.Minute}

	params := RouterParams{
		AuthMiddleware:      middleware.NewAuthMiddleware(tokenSvc, profileRepo),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(limiter, cfg, newDiscardLogger()),
	}

	e := echo.New()
	e.Validator = validator.New()
	NewRouter(params).RegisterRoutes(e)

	return routerFixtures{
		echo:        e,
		limiter:     limiter,
		tokenSvc:    tokenSvc,
		profileRepo: profileRepo,
	}
}

func TestRouter_RateLimiterKeysOnAuthenticatedUser(t *testing.T) {
	fx := createTestRouter(t)

	userID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(&jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":  userID.String(),
			"role": "driver",
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, "user:"+userID.String(), fx.limiter.identifier)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouter_RateLimiterKeysOnIPForAnonymousRoutes(t *testing.T) {
	fx := createTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, "ip:203.0.113.9", fx.limiter.identifier)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouter_HealthCheckBypassesRateLimiter(t *testing.T) {
	fx := createTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, fx.limiter.identifier)
}

func TestRouter_LocationRequiresDriverRole(t *testing.T) {
	fx := createTestRouter(t)

	userID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateAccessToken("user-token").Return(&jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":  userID.String(),
			"role": "user",
		},
	}, nil)
	fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, userID).Return(&entity.Profile{
		ID:   userID,
		Role: entity.RoleUser,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/location", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ROLE_REQUIRED")
	assert.Empty(t, fx.limiter.identifier)
}

func TestRouter_LocationReachableForDrivers(t *testing.T) {
	fx := createTestRouter(t)

	driverID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateAccessToken("driver-token").Return(&jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":  driverID.String(),
			"role": "driver",
		},
	}, nil)
	fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, driverID).Return(&entity.Profile{
		ID:   driverID,
		Role: entity.RoleDriver,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/location", nil)
	req.Header.Set("Authorization", "Bearer driver-token")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	// The denying limiter answers, proving the driver cleared the role gate
	// and was keyed by identity.
	assert.Equal(t, "user:"+driverID.String(), fx.limiter.identifier)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
