package services

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
)

// AuthSvcFacade verifies credentials and issues access tokens.
type AuthSvcFacade interface {
	// Login returns the account and a signed access token, or
	// apperrors.ErrUnauthorized for unknown email, wrong password or an
	// inactive account. The three cases are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
