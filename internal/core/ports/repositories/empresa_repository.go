package repositories

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
)

// EmpresaRepository persists contracting companies.
type EmpresaRepository interface {
	// CreateEmpresa inserts the row and returns it with the assigned id and timestamps.
	CreateEmpresa(ctx context.Context, empresa domain.Empresa) (*domain.Empresa, error)
	// FindEmpresaByID returns apperrors.ErrNotFound when the id is unknown.
	FindEmpresaByID(ctx context.Context, id int64) (*domain.Empresa, error)
	// FindEmpresaByCNPJ returns apperrors.ErrNotFound when no row carries the cnpj.
	// The match is a case-sensitive exact match on the stored string.
	FindEmpresaByCNPJ(ctx context.Context, cnpj string) (*domain.Empresa, error)
	// FindEmpresas lists companies ordered by nome. A nil status returns all rows.
	FindEmpresas(ctx context.Context, status *domain.EmpresaStatus) ([]domain.Empresa, error)
	// UpdateEmpresa overwrites the mutable columns of the row identified by empresa.ID.
	UpdateEmpresa(ctx context.Context, empresa domain.Empresa) (*domain.Empresa, error)
	// CountDependents counts clientes and funcionarios referencing the
	// empresa, regardless of their status.
	CountDependents(ctx context.Context, empresaID int64) (int64, error)
	// DeleteEmpresa physically removes the row.
	DeleteEmpresa(ctx context.Context, id int64) error
}
