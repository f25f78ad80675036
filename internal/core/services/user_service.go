package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portsrepo "github.com/gestorobras/gestor_diarias_app/internal/core/ports/repositories"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
	"github.com/gestorobras/gestor_diarias_app/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates the lifecycle service for accounts.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email: %w", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	status := domain.UserAtivo
	if req.Status != "" {
		status = domain.UserStatus(req.Status)
	}

	user := domain.User{
		Nome:         req.Nome,
		Email:        req.Email,
		PasswordHash: hash,
		Papel:        domain.UserPapel(req.Papel),
		Status:       status,
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.LogInfo(ctx, "User created", slog.Int64("new_user_id", created.ID))
	return created, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, id)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepo.FindUserByEmail(ctx, *req.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("email: %w", apperrors.ErrDuplicate)
		}
		user.Email = *req.Email
	}
	if req.Nome != nil {
		user.Nome = *req.Nome
	}
	if req.Papel != nil {
		user.Papel = domain.UserPapel(*req.Papel)
	}
	if req.Status != nil {
		user.Status = domain.UserStatus(*req.Status)
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	updated, err := s.userRepo.UpdateUser(ctx, *user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	s.LogInfo(ctx, "User updated", slog.Int64("target_user_id", id))
	return updated, nil
}

func (s *userService) DeactivateUser(ctx context.Context, id int64) error {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Status == domain.UserInativo {
		return nil
	}
	user.Status = domain.UserInativo
	if _, err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to deactivate user %d: %w", id, err)
	}
	s.LogInfo(ctx, "User deactivated", slog.Int64("target_user_id", id))
	return nil
}

// EnsureAdminUser seeds the default administrator so the system always has
// an entry point. It is a no-op when the account already exists.
func (s *userService) EnsureAdminUser(ctx context.Context, email, password string) error {
	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	_, err = s.CreateUser(ctx, dto.CreateUserRequest{
		Nome:     "Administrador Padrão",
		Email:    email,
		Password: password,
		Papel:    string(domain.PapelAdmin),
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	s.LogInfo(ctx, "Default admin user created", slog.String("email", email))
	return nil
}
