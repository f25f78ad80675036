package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/utils"
)

// AuthConfig carries the token parameters the auth service needs.
type AuthConfig struct {
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
}

type authService struct {
	BaseService
	cfg         AuthConfig
	userService portssvc.UserSvcFacade
}

// NewAuthService creates the credential verification service.
func NewAuthService(cfg AuthConfig, userService portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userService: userService}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies email+password against an active account. Unknown email,
// wrong password and inactive status all collapse into ErrUnauthorized so
// callers cannot probe which accounts exist.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("failed to look up user for login: %w", err)
	}
	if user.Status != domain.UserAtivo {
		s.LogWarn(ctx, "Login rejected for inactive user", slog.Int64("user_id", user.ID))
		return nil, "", apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Login rejected, password mismatch", slog.Int64("user_id", user.ID))
		return nil, "", apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(user.ID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "Login succeeded", slog.Int64("user_id", user.ID))
	return user, token, nil
}
