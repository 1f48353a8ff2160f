package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSTestConfig(env string, origins []string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env
	if origins != nil {
		cfg.CORS = &config.CORSConfig{AllowedOrigins: origins}
	}

	return cfg
}

func TestCORSMiddleware_ResolveOrigin_NonProductionWildcard(t *testing.T) {
	m := NewCORSMiddleware(newCORSTestConfig("local", []string{"https://admin.example.com"}))

	allowOrigin, allowCredentials := m.ResolveOrigin("https://evil.example.com")
	assert.Equal(t, "*", allowOrigin)
	assert.False(t, allowCredentials)
}

func TestCORSMiddleware_ResolveOrigin_ProductionAllowListed(t *testing.T) {
	m := NewCORSMiddleware(newCORSTestConfig("production", []string{
		"https://admin.example.com",
		"https://ops.example.com",
	}))

	allowOrigin, allowCredentials := m.ResolveOrigin("https://ops.example.com")
	assert.Equal(t, "https://ops.example.com", allowOrigin)
	assert.True(t, allowCredentials)
}

func TestCORSMiddleware_ResolveOrigin_ProductionUnknownFallsBackToFirst(t *testing.T) {
	m := NewCORSMiddleware(newCORSTestConfig("production", []string{
		"https://admin.example.com",
		"https://ops.example.com",
	}))

	allowOrigin, allowCredentials := m.ResolveOrigin("https://evil.example.com")
	assert.Equal(t, "https://admin.example.com", allowOrigin)
	assert.False(t, allowCredentials)
}

func TestCORSMiddleware_ResolveOrigin_ProductionEmptyAllowList(t *testing.T) {
	m := NewCORSMiddleware(newCORSTestConfig("production", nil))

	allowOrigin, allowCredentials := m.ResolveOrigin("https://admin.example.com")
	assert.Empty(t, allowOrigin)
	assert.False(t, allowCredentials)
}

func TestCORSMiddleware_Handle_SetsHeaders(t *testing.T) {
	m := NewCORSMiddleware(newCORSTestConfig("production", []string{"https://admin.example.com"}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set(echo.HeaderOrigin, "https://admin.example.com")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	header := rec.Header()
	assert.Equal(t, "https://admin.example.com", header.Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", header.Get(echo.HeaderAccessControlAllowCredentials))
	assert.Equal(t, corsAllowMethods, header.Get(echo.HeaderAccessControlAllowMethods))
	assert.Equal(t, corsAllowHeaders, header.Get(echo.HeaderAccessControlAllowHeaders))
	assert.Equal(t, corsMaxAge, header.Get(echo.HeaderAccessControlMaxAge))
}

func TestCORSMiddleware_Handle_PreflightShortCircuits(t *testing.T) {
	m := NewCORSMiddleware(newCORSTestConfig("local", nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodOptions, "/jobs", nil)
	req.Header.Set(echo.HeaderOrigin, "https://admin.example.com")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	handler := m.Handle(func(c echo.Context) error {
		handlerCalled = true

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, handlerCalled)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
