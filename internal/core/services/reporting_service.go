package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portsrepo "github.com/gestorobras/gestor_diarias_app/internal/core/ports/repositories"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates the aggregation service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// RelatorioDiarias sums valor and counts rows over the filtered set.
// An empty match set yields zero totals, never nil.
func (s *reportingService) RelatorioDiarias(ctx context.Context, filter domain.DiariaFilter) (*domain.RelatorioDiarias, error) {
	relatorio, err := s.reportingRepo.SummarizeDiarias(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize diarias: %w", err)
	}
	if relatorio == nil {
		relatorio = &domain.RelatorioDiarias{}
	}
	s.LogInfo(ctx, "Relatorio generated", slog.Int64("total_diarias", relatorio.TotalDiarias), slog.String("total_valor", relatorio.TotalValor.String()))
	return relatorio, nil
}
