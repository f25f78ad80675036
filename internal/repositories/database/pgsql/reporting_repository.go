package pgsql

import (
	"context"
	"fmt"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portsrepo "github.com/gestorobras/gestor_diarias_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) SummarizeDiarias(ctx context.Context, filter domain.DiariaFilter) (*domain.RelatorioDiarias, error) {
	// COALESCE keeps the empty set at {0, 0} instead of a NULL sum.
	query := `
		SELECT COALESCE(SUM(d.valor), 0) AS total_valor, COUNT(d.id) AS total_diarias
		FROM diarias d
		JOIN clientes c ON c.id = d.cliente_id
		WHERE ($1::bigint IS NULL OR c.empresa_id = $1)
		  AND ($2::bigint IS NULL OR d.cliente_id = $2)
		  AND ($3::bigint IS NULL OR d.funcionario_id = $3)
		  AND ($4::text IS NULL OR d.status = $4)
		  AND ($5::date IS NULL OR d.data >= $5)
		  AND ($6::date IS NULL OR d.data <= $6);
	`
	var relatorio domain.RelatorioDiarias
	err := r.Pool.QueryRow(ctx, query,
		filter.EmpresaID, filter.ClienteID, filter.FuncionarioID, filter.Status, filter.DataInicio, filter.DataFim).
		Scan(&relatorio.TotalValor, &relatorio.TotalDiarias)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize diarias: %w", err)
	}
	return &relatorio, nil
}
