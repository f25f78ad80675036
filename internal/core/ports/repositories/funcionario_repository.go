package repositories

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
)

// FuncionarioRepository persists workers.
type FuncionarioRepository interface {
	CreateFuncionario(ctx context.Context, funcionario domain.Funcionario) (*domain.Funcionario, error)
	// FindFuncionarioByID returns the funcionario joined with its empresa's nome.
	FindFuncionarioByID(ctx context.Context, id int64) (*domain.FuncionarioWithEmpresa, error)
	FindFuncionarioByCPF(ctx context.Context, cpf string) (*domain.Funcionario, error)
	// FindFuncionarioByEmail matches the stored email exactly; empty emails are never matched.
	FindFuncionarioByEmail(ctx context.Context, email string) (*domain.Funcionario, error)
	// FindFuncionarios lists workers ordered by nome, joined with empresa nome.
	FindFuncionarios(ctx context.Context, filter domain.FuncionarioFilter) ([]domain.FuncionarioWithEmpresa, error)
	UpdateFuncionario(ctx context.Context, funcionario domain.Funcionario) (*domain.Funcionario, error)
}
