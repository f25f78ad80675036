package dto

import (
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
)

// CreateUserRequest carries the fields accepted when registering an account.
type CreateUserRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Papel    string `json:"papel" binding:"required,oneof=Admin Operador"`
	Status   string `json:"status" binding:"omitempty,oneof=Ativo Inativo"`
}

// UpdateUserRequest is a merge-patch: only non-nil fields are applied.
// A non-nil Password is re-hashed before storage.
type UpdateUserRequest struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Papel    *string `json:"papel" binding:"omitempty,oneof=Admin Operador"`
	Status   *string `json:"status" binding:"omitempty,oneof=Ativo Inativo"`
}

// UserResponse is the account payload sent to clients. The password hash is
// excluded by construction, not by serialization tags.
type UserResponse struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Papel     string `json:"papel"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUserResponse converts a domain.User into its client payload.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Nome:      user.Nome,
		Email:     user.Email,
		Papel:     string(user.Papel),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToUserResponseList converts a slice of accounts.
func ToUserResponseList(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
