// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile row is missing.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when the email is already registered.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// CreateProfile persists a new profile.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfileByID retrieves a profile by its primary key.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindProfileByEmail retrieves a profile by its unique email.
	FindProfileByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// FindProfilesByIDs retrieves profiles for a set of IDs. Missing IDs are
	// silently absent from the result.
	FindProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error)

	// UpdateProfile persists mutable profile fields (contact info, role,
	// notification preference).
	UpdateProfile(ctx context.Context, profile *entity.Profile) error

	// CountByRole returns the number of active profiles with the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
