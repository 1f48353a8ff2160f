package middleware

import (
	"strings"

	"fleet/internal/delivery/http/response"
	"fleet/internal/domain/constants"
	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	profileRepo repository.ProfileRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, profileRepo repository.ProfileRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, profileRepo: profileRepo}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Failed to parse token claims")
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID format in token")
		}

		role, _ := claims["role"].(string)

		// Set user info on the context for handlers to use
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyRole, role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller's profile row
// carries the given role. It must be used AFTER the Authenticate middleware.
// The role actually stored on the profile is authoritative, not the token
// claim, so a revoked role takes effect without waiting for token expiry.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity missing")
			}

			profile, err := m.profileRepo.FindProfileByID(c.Request().Context(), userID)
			if err != nil || profile == nil {
				return response.Forbidden(c, "PROFILE_NOT_FOUND", "Profile not found")
			}

			if profile.Role != requiredRole {
				return response.Forbidden(c, "ROLE_REQUIRED", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			// Refresh the context role from the profile row
			c.Set(constants.ContextKeyRole, profile.Role.String())

			return next(c)
		}
	}
}
