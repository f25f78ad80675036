package repositories

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
)

// DiariaRepository persists daily work entries.
type DiariaRepository interface {
	CreateDiaria(ctx context.Context, diaria domain.Diaria) (*domain.Diaria, error)
	// FindDiariaByID returns the diaria joined with funcionario, cliente and empresa names.
	FindDiariaByID(ctx context.Context, id int64) (*domain.DiariaWithNames, error)
	// FindDiarias lists diarias ordered by data descending.
	FindDiarias(ctx context.Context, filter domain.DiariaFilter) ([]domain.DiariaWithNames, error)
	UpdateDiaria(ctx context.Context, diaria domain.Diaria) (*domain.Diaria, error)
}
