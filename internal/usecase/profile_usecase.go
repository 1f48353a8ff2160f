package usecase

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProfileInput defines the data an admin supplies to create a profile.
type CreateProfileInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     entity.Role
}

// UpdateProfileInput defines the mutable profile fields. Nil pointers leave
// the current value untouched.
type UpdateProfileInput struct {
	FullName             *string
	Phone                *string
	NotificationsEnabled *bool
	IsActive             *bool
}

// ProfileUsecase defines the interface for profile management operations.
type ProfileUsecase interface {
	// CreateProfile registers a new driver or admin account.
	CreateProfile(ctx context.Context, input CreateProfileInput) (*entity.Profile, error)

	// GetProfile retrieves a profile by ID.
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// UpdateProfile applies the non-nil fields of input to the profile.
	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*entity.Profile, error)
}
