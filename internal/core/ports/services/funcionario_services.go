package services

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
)

// FuncionarioSvcFacade is the lifecycle surface for workers.
type FuncionarioSvcFacade interface {
	CreateFuncionario(ctx context.Context, req dto.CreateFuncionarioRequest) (*domain.Funcionario, error)
	ListFuncionarios(ctx context.Context, filter domain.FuncionarioFilter) ([]domain.FuncionarioWithEmpresa, error)
	GetFuncionarioByID(ctx context.Context, id int64) (*domain.FuncionarioWithEmpresa, error)
	UpdateFuncionario(ctx context.Context, id int64, req dto.UpdateFuncionarioRequest) (*domain.Funcionario, error)
	// DeactivateFuncionario is the soft delete; it is idempotent.
	DeactivateFuncionario(ctx context.Context, id int64) error
	// ConvertFuncionario moves tipo from Treinamento to Autônomo, one way.
	ConvertFuncionario(ctx context.Context, id int64) (*domain.Funcionario, error)
}
