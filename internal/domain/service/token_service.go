// Package service defines interfaces for domain services implemented in infra.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating auth tokens.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given
	// profile and role.
	GenerateTokens(userID uuid.UUID, role string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks the validity of an access token string.
	ValidateAccessToken(tokenString string) (*jwt.Token, error)

	// ValidateRefreshToken checks the validity of a refresh token string.
	ValidateRefreshToken(tokenString string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}

// PasswordHasher defines the interface for password hashing.
type PasswordHasher interface {
	// Hash produces a one-way hash of the plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the hash.
	Compare(hashedPassword, password string) error
}
