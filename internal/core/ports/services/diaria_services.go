package services

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
)

// DiariaSvcFacade is the lifecycle surface for daily work entries.
type DiariaSvcFacade interface {
	CreateDiaria(ctx context.Context, req dto.CreateDiariaRequest) (*domain.Diaria, error)
	ListDiarias(ctx context.Context, filter domain.DiariaFilter) ([]domain.DiariaWithNames, error)
	GetDiariaByID(ctx context.Context, id int64) (*domain.DiariaWithNames, error)
	UpdateDiaria(ctx context.Context, id int64, req dto.UpdateDiariaRequest) (*domain.Diaria, error)
	// CancelDiaria is the soft delete; it forces status to Cancelado from any state.
	CancelDiaria(ctx context.Context, id int64) error
}
