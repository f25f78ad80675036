package services

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
)

// ReportingSvcFacade computes aggregates for the report screens.
type ReportingSvcFacade interface {
	RelatorioDiarias(ctx context.Context, filter domain.DiariaFilter) (*domain.RelatorioDiarias, error)
}
