package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet/config"
	"fleet/internal/domain/constants"
	"fleet/internal/infra/ratelimit"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLimiter struct {
	result     *ratelimit.Result
	err        error
	identifier string
}

func (s *stubLimiter) Allow(_ context.Context, identifier string) (*ratelimit.Result, error) {
	s.identifier = identifier

	return s.result, s.err
}

func newRateLimitTestConfig(enabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.RateLimit = &config.RateLimitConfig{
		Enabled:     enabled,
		MaxRequests: 100,
		Window:      time.Minute,
	}

	return cfg
}

func newRateLimitContext(headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func passThroughHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestRateLimitMiddleware_AllowedRequestSetsHeaders(t *testing.T) {
	limiter := &stubLimiter{
		result: &ratelimit.Result{
			Allowed:   true,
			Limit:     100,
			Remaining: 42,
			ResetAt:   time.Now().Add(time.Minute),
		},
	}
	m := NewRateLimitMiddleware(limiter, newRateLimitTestConfig(true), newDiscardLogger())

	c, rec := newRateLimitContext(nil)
	handlerCalled := false
	require.NoError(t, m.Handle(passThroughHandler(&handlerCalled))(c))

	assert.True(t, handlerCalled)
	assert.Equal(t, "100", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "42", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Empty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_ExhaustedWindowRejects(t *testing.T) {
	limiter := &stubLimiter{
		result: &ratelimit.Result{
			Allowed:   false,
			Limit:     100,
			Remaining: 0,
			ResetAt:   time.Now().Add(30 * time.Second),
		},
	}
	m := NewRateLimitMiddleware(limiter, newRateLimitTestConfig(true), newDiscardLogger())

	c, rec := newRateLimitContext(nil)
	handlerCalled := false
	require.NoError(t, m.Handle(passThroughHandler(&handlerCalled))(c))

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
}

func TestRateLimitMiddleware_RetryAfterRoundsUp(t *testing.T) {
	limiter := &stubLimiter{
		result: &ratelimit.Result{
			Allowed:   false,
			Limit:     100,
			Remaining: 0,
			ResetAt:   time.Now().Add(300 * time.Millisecond),
		},
	}
	m := NewRateLimitMiddleware(limiter, newRateLimitTestConfig(true), newDiscardLogger())

	c, rec := newRateLimitContext(nil)
	handlerCalled := false
	require.NoError(t, m.Handle(passThroughHandler(&handlerCalled))(c))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_LimiterErrorFailsOpen(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("redis unreachable")}
	m := NewRateLimitMiddleware(limiter, newRateLimitTestConfig(true), newDiscardLogger())

	c, rec := newRateLimitContext(nil)
	handlerCalled := false
	require.NoError(t, m.Handle(passThroughHandler(&handlerCalled))(c))

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitMiddleware_DisabledPassesThrough(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("must not be called")}
	m := NewRateLimitMiddleware(limiter, newRateLimitTestConfig(false), newDiscardLogger())

	c, _ := newRateLimitContext(nil)
	handlerCalled := false
	require.NoError(t, m.Handle(passThroughHandler(&handlerCalled))(c))

	assert.True(t, handlerCalled)
	assert.Empty(t, limiter.identifier)
}

func TestRateLimitMiddleware_IdentifierPrefersAuthenticatedUser(t *testing.T) {
	limiter := &stubLimiter{
		result: &ratelimit.Result{Allowed: true, Limit: 100, Remaining: 99},
	}
	m := NewRateLimitMiddleware(limiter, newRateLimitTestConfig(true), newDiscardLogger())

	userID := uuid.New()
	c, _ := newRateLimitContext(map[string]string{"X-Forwarded-For": "203.0.113.9"})
	c.Set(constants.ContextKeyUserID, userID)

	handlerCalled := false
	require.NoError(t, m.Handle(passThroughHandler(&handlerCalled))(c))

	assert.Equal(t, "user:"+userID.String(), limiter.identifier)
}

func TestRateLimitMiddleware_IdentifierFromForwardedFor(t *testing.T) {
	limiter := &stubLimiter{
		result: &ratelimit.Result{Allowed: true, Limit: 100, Remaining: 99},
	}
	m := NewRateLimitMiddleware(limiter, newRateLimitTestConfig(true), newDiscardLogger())

	c, _ := newRateLimitContext(map[string]string{
		"X-Forwarded-For": " 203.0.113.9 , 10.0.0.1",
		"X-Real-IP":       "198.51.100.2",
	})

	handlerCalled := false
	require.NoError(t, m.Handle(passThroughHandler(&handlerCalled))(c))

	assert.Equal(t, "ip:203.0.113.9", limiter.identifier)
}

func TestRateLimitMiddleware_IdentifierFromRealIP(t *testing.T) {
	limiter := &stubLimiter{
		result: &ratelimit.Result{Allowed: true, Limit: 100, Remaining: 99},
	}
	m := NewRateLimitMiddleware(limiter, newRateLimitTestConfig(true), newDiscardLogger())

	c, _ := newRateLimitContext(map[string]string{"X-Real-IP": "198.51.100.2"})

	handlerCalled := false
	require.NoError(t, m.Handle(passThroughHandler(&handlerCalled))(c))

	assert.Equal(t, "ip:198.51.100.2", limiter.identifier)
}

func TestRateLimitMiddleware_IdentifierFallsBackToUnknown(t *testing.T) {
	limiter := &stubLimiter{
		result: &ratelimit.Result{Allowed: true, Limit: 100, Remaining: 99},
	}
	m := NewRateLimitMiddleware(limiter, newRateLimitTestConfig(true), newDiscardLogger())

	c, _ := newRateLimitContext(nil)

	handlerCalled := false
	require.NoError(t, m.Handle(passThroughHandler(&handlerCalled))(c))

	assert.Equal(t, "unknown", limiter.identifier)
}
