package services

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
)

// UserSvcFacade is the lifecycle surface for accounts.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*domain.User, error)
	// DeactivateUser is the soft delete; it is idempotent.
	DeactivateUser(ctx context.Context, id int64) error
	// EnsureAdminUser seeds the default admin account when absent.
	EnsureAdminUser(ctx context.Context, email, password string) error
}
