package middleware

import (
	"net/http"
	"slices"

	"fleet/config"

	"github.com/labstack/echo/v4"
)

const (
	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsAllowHeaders = "Authorization, Content-Type, X-Request-Id"
	corsMaxAge       = "86400"
)

// CORSMiddleware attaches CORS headers to every response, error responses
// included, and short-circuits preflight requests.
type CORSMiddleware struct {
	production     bool
	allowedOrigins []string
}

// NewCORSMiddleware is the constructor for CORSMiddleware.
func NewCORSMiddleware(cfg *config.Config) *CORSMiddleware {
	var allowed []string
	if cfg.CORS != nil {
		allowed = cfg.CORS.AllowedOrigins
	}

	return &CORSMiddleware{
		production:     cfg.IsProduction(),
		allowedOrigins: allowed,
	}
}

// ResolveOrigin decides which Access-Control-Allow-Origin value a caller
// gets. Outside production every origin is allowed. In production an
// allow-listed origin is echoed back with credentials enabled; anything else
// falls back to the first allow-listed entry, never a wildcard.
func (m *CORSMiddleware) ResolveOrigin(origin string) (allowOrigin string, allowCredentials bool) {
	if !m.production {
		return "*", false
	}

	if origin != "" && slices.Contains(m.allowedOrigins, origin) {
		return origin, true
	}

	if len(m.allowedOrigins) > 0 {
		return m.allowedOrigins[0], false
	}

	return "", false
}

// Handle applies the resolved CORS headers and answers preflights with 204.
func (m *CORSMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		origin := c.Request().Header.Get(echo.HeaderOrigin)
		allowOrigin, allowCredentials := m.ResolveOrigin(origin)

		header := c.Response().Header()
		if allowOrigin != "" {
			header.Set(echo.HeaderAccessControlAllowOrigin, allowOrigin)
		}
		if allowCredentials {
			header.Set(echo.HeaderAccessControlAllowCredentials, "true")
		}
		header.Set(echo.HeaderAccessControlAllowMethods, corsAllowMethods)
		header.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeaders)
		header.Set(echo.HeaderAccessControlMaxAge, corsMaxAge)

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusNoContent)
		}

		return next(c)
	}
}
