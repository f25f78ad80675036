package services

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
)

// EmpresaSvcFacade is the lifecycle surface for contracting companies.
type EmpresaSvcFacade interface {
	CreateEmpresa(ctx context.Context, req dto.CreateEmpresaRequest) (*domain.Empresa, error)
	ListEmpresas(ctx context.Context, status *domain.EmpresaStatus) ([]domain.Empresa, error)
	GetEmpresaByID(ctx context.Context, id int64) (*domain.Empresa, error)
	UpdateEmpresa(ctx context.Context, id int64, req dto.UpdateEmpresaRequest) (*domain.Empresa, error)
	// DeactivateEmpresa is the soft delete; it is idempotent.
	DeactivateEmpresa(ctx context.Context, id int64) error
	// RestoreEmpresa moves an Inativo company back to Ativo.
	RestoreEmpresa(ctx context.Context, id int64) (*domain.Empresa, error)
	// ForceDeleteEmpresa physically removes a company with no dependents.
	ForceDeleteEmpresa(ctx context.Context, id int64) error
}
