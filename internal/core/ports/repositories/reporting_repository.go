package repositories

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
)

// ReportingRepository computes aggregates over diarias.
type ReportingRepository interface {
	// SummarizeDiarias sums valor and counts rows over the filtered set.
	// An empty match set yields {0, 0}.
	SummarizeDiarias(ctx context.Context, filter domain.DiariaFilter) (*domain.RelatorioDiarias, error)
}
