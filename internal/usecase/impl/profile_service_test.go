package impl

import (
	"context"
	"testing"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	mockRepo "fleet/internal/mocks/repository"
	mockSvc "fleet/internal/mocks/service"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		hasher:      hasher,
	}
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := usecase.CreateProfileInput{
		Email:    "driver@example.com",
		Password: "secret",
		FullName: "Pat Driver",
		Phone:    "+886912345678",
		Role:     entity.RoleDriver,
	}

	fx.hasher.EXPECT().
		Hash("secret").
		Return("$2a$12$hash", nil)

	fx.profileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	profile, err := fx.service.CreateProfile(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.Email, profile.Email)
	assert.Equal(t, "$2a$12$hash", profile.PasswordHash)
	assert.Equal(t, entity.RoleDriver, profile.Role)
	assert.True(t, profile.IsActive)
	assert.True(t, profile.NotificationsEnabled)
}

func TestProfileService_CreateProfile_InvalidRole(t *testing.T) {
	fx := createTestProfileService(t)

	profile, err := fx.service.CreateProfile(context.Background(), usecase.CreateProfileInput{
		Email: "x@example.com",
		Role:  entity.Role("superuser"),
	})
	assert.Error(t, err)
	assert.Nil(t, profile)
	fx.profileRepo.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
}

func TestProfileService_CreateProfile_DuplicateEmail(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("secret").
		Return("$2a$12$hash", nil)

	fx.profileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(repository.ErrDuplicateProfile)

	profile, err := fx.service.CreateProfile(ctx, usecase.CreateProfileInput{
		Email:    "taken@example.com",
		Password: "secret",
		Role:     entity.RoleAdmin,
	})
	assert.Error(t, err)
	assert.Nil(t, profile)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrConflict.ErrorCode(), appErr.ErrorCode())
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfileByID(ctx, id).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, id)
	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Profile{
		ID:                   id,
		FullName:             "Old Name",
		Phone:                "+886900000000",
		NotificationsEnabled: true,
		IsActive:             true,
	}

	fx.profileRepo.EXPECT().
		FindProfileByID(ctx, id).
		Return(existing, nil)

	fx.profileRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	newName := "New Name"
	disabled := false
	profile, err := fx.service.UpdateProfile(ctx, id, usecase.UpdateProfileInput{
		FullName:             &newName,
		NotificationsEnabled: &disabled,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", profile.FullName)
	assert.Equal(t, "+886900000000", profile.Phone)
	assert.False(t, profile.NotificationsEnabled)
	assert.True(t, profile.IsActive)
}
