package impl

import (
	"context"
	"log/slog"
	"time"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// CreateProfile registers a new driver or admin account.
func (s *profileService) CreateProfile(ctx context.Context, input usecase.CreateProfileInput) (*entity.Profile, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid role")
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	profile := &entity.Profile{
		ID:                   uuid.New(),
		Email:                input.Email,
		PasswordHash:         passwordHash,
		FullName:             input.FullName,
		Phone:                input.Phone,
		Role:                 input.Role,
		NotificationsEnabled: true,
		IsActive:             true,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) {
			return nil, domainerrors.ErrConflict.WrapMessage("email already registered")
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	s.logger.Info("profile created",
		slog.String("profile_id", profile.ID.String()),
		slog.String("role", profile.Role.String()),
	)

	return profile, nil
}

// GetProfile retrieves a profile by ID.
func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return profile, nil
}

// UpdateProfile applies the non-nil fields of input to the profile.
func (s *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.NotificationsEnabled != nil {
		profile.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.IsActive != nil {
		profile.IsActive = *input.IsActive
	}
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}
