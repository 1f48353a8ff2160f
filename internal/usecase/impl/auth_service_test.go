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

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	profileRepo  *mockRepo.MockProfileRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		ProfileRepo:  profileRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		profileRepo:  profileRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profileID := uuid.New()
	profile := &entity.Profile{
		ID:           profileID,
		Email:        "dispatcher@example.com",
		PasswordHash: "$2a$12$hash",
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}

	fx.profileRepo.EXPECT().
		FindProfileByEmail(ctx, profile.Email).
		Return(profile, nil)

	fx.hasher.EXPECT().
		Compare(profile.PasswordHash, "secret").
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateTokens(profileID, entity.RoleAdmin.String()).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: profile.Email, Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, profileID, output.Profile.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindProfileByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrProfileNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profile := &entity.Profile{
		ID:           uuid.New(),
		Email:        "driver@example.com",
		PasswordHash: "$2a$12$hash",
		Role:         entity.RoleDriver,
		IsActive:     true,
	}

	fx.profileRepo.EXPECT().
		FindProfileByEmail(ctx, profile.Email).
		Return(profile, nil)

	fx.hasher.EXPECT().
		Compare(profile.PasswordHash, "wrong").
		Return(errors.New("hash mismatch"))

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: profile.Email, Password: "wrong"})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profile := &entity.Profile{
		ID:           uuid.New(),
		Email:        "fired@example.com",
		PasswordHash: "$2a$12$hash",
		Role:         entity.RoleDriver,
		IsActive:     false,
	}

	fx.profileRepo.EXPECT().
		FindProfileByEmail(ctx, profile.Email).
		Return(profile, nil)

	fx.hasher.EXPECT().
		Compare(profile.PasswordHash, "secret").
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: profile.Email, Password: "secret"})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profileID := uuid.New()
	profile := &entity.Profile{
		ID:       profileID,
		Role:     entity.RoleDriver,
		IsActive: true,
	}

	token := &jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":  profileID.String(),
			"type": "refresh",
		},
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(token, nil)

	fx.profileRepo.EXPECT().
		FindProfileByID(ctx, profileID).
		Return(profile, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(profileID, entity.RoleDriver.String()).
		Return("new-access", "new-refresh", nil)

	output, err := fx.service.RefreshToken(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshToken(context.Background(), "garbage")
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	fx := createTestAuthService(t)

	token := &jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":  uuid.New().String(),
			"type": "access",
		},
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("access-as-refresh").
		Return(token, nil)

	output, err := fx.service.RefreshToken(context.Background(), "access-as-refresh")
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_DeactivatedProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profileID := uuid.New()

	token := &jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":  profileID.String(),
			"type": "refresh",
		},
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(token, nil)

	fx.profileRepo.EXPECT().
		FindProfileByID(ctx, profileID).
		Return(&entity.Profile{ID: profileID, IsActive: false}, nil)

	output, err := fx.service.RefreshToken(ctx, "refresh-token")
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}
