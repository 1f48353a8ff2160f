// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	"fleet/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	profileRepo  repository.ProfileRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		profileRepo:  params.ProfileRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Login verifies the credentials and issues a token pair. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	profile, err := s.profileRepo.FindProfileByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	if err := s.hasher.Compare(profile.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !profile.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(profile.ID, profile.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	s.logger.Info("profile logged in",
		slog.String("profile_id", profile.ID.String()),
		slog.String("role", profile.Role.String()),
	)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair. The
// profile row is reloaded so a role change or deactivation takes effect on
// the next refresh.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	token, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("malformed refresh token claims")
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("not a refresh token")
	}

	subject, _ := claims["sub"].(string)
	profileID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid subject claim")
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	if !profile.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, newRefreshToken, err := s.tokenService.GenerateTokens(profile.ID, profile.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		Profile:      profile,
	}, nil
}
