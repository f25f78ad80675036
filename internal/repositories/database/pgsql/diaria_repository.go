package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portsrepo "github.com/gestorobras/gestor_diarias_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDiariaRepository struct {
	BaseRepository
}

func newPgxDiariaRepository(db *pgxpool.Pool) portsrepo.DiariaRepository {
	return &PgxDiariaRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DiariaRepository = (*PgxDiariaRepository)(nil)

func scanDiaria(row pgx.Row) (*domain.Diaria, error) {
	var d domain.Diaria
	err := row.Scan(&d.ID, &d.Data, &d.Valor, &d.Status, &d.Observacao, &d.FuncionarioID, &d.ClienteID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxDiariaRepository) CreateDiaria(ctx context.Context, diaria domain.Diaria) (*domain.Diaria, error) {
	query := `
		INSERT INTO diarias (data, valor, status, observacao, funcionario_id, cliente_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, data, valor, status, observacao, funcionario_id, cliente_id, created_at, updated_at;
	`
	created, err := scanDiaria(r.Pool.QueryRow(ctx, query,
		diaria.Data, diaria.Valor, diaria.Status, diaria.Observacao, diaria.FuncionarioID, diaria.ClienteID))
	if err != nil {
		return nil, translateConstraintError(err, "failed to insert diaria")
	}
	return created, nil
}

func (r *PgxDiariaRepository) FindDiariaByID(ctx context.Context, id int64) (*domain.DiariaWithNames, error) {
	query := `
		SELECT d.id, d.data, d.valor, d.status, d.observacao, d.funcionario_id, d.cliente_id, d.created_at, d.updated_at,
		       f.nome AS funcionario_nome, c.nome AS cliente_nome, e.nome AS empresa_nome
		FROM diarias d
		JOIN funcionarios f ON f.id = d.funcionario_id
		JOIN clientes c ON c.id = d.cliente_id
		JOIN empresas e ON e.id = c.empresa_id
		WHERE d.id = $1;
	`
	var dw domain.DiariaWithNames
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&dw.ID, &dw.Data, &dw.Valor, &dw.Status, &dw.Observacao, &dw.FuncionarioID, &dw.ClienteID,
		&dw.CreatedAt, &dw.UpdatedAt, &dw.FuncionarioNome, &dw.ClienteNome, &dw.EmpresaNome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find diaria by id %d: %w", id, err)
	}
	return &dw, nil
}

func (r *PgxDiariaRepository) FindDiarias(ctx context.Context, filter domain.DiariaFilter) ([]domain.DiariaWithNames, error) {
	// The date range is inclusive on both ends; nil bounds leave the range open.
	query := `
		SELECT d.id, d.data, d.valor, d.status, d.observacao, d.funcionario_id, d.cliente_id, d.created_at, d.updated_at,
		       f.nome AS funcionario_nome, c.nome AS cliente_nome, e.nome AS empresa_nome
		FROM diarias d
		JOIN funcionarios f ON f.id = d.funcionario_id
		JOIN clientes c ON c.id = d.cliente_id
		JOIN empresas e ON e.id = c.empresa_id
		WHERE ($1::bigint IS NULL OR c.empresa_id = $1)
		  AND ($2::bigint IS NULL OR d.cliente_id = $2)
		  AND ($3::bigint IS NULL OR d.funcionario_id = $3)
		  AND ($4::text IS NULL OR d.status = $4)
		  AND ($5::date IS NULL OR d.data >= $5)
		  AND ($6::date IS NULL OR d.data <= $6)
		ORDER BY d.data DESC;
	`
	rows, err := r.Pool.Query(ctx, query,
		filter.EmpresaID, filter.ClienteID, filter.FuncionarioID, filter.Status, filter.DataInicio, filter.DataFim)
	if err != nil {
		return nil, fmt.Errorf("failed to query diarias: %w", err)
	}
	defer rows.Close()

	diarias := []domain.DiariaWithNames{}
	for rows.Next() {
		var dw domain.DiariaWithNames
		if err := rows.Scan(
			&dw.ID, &dw.Data, &dw.Valor, &dw.Status, &dw.Observacao, &dw.FuncionarioID, &dw.ClienteID,
			&dw.CreatedAt, &dw.UpdatedAt, &dw.FuncionarioNome, &dw.ClienteNome, &dw.EmpresaNome); err != nil {
			return nil, fmt.Errorf("failed to scan diaria row: %w", err)
		}
		diarias = append(diarias, dw)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating diaria rows: %w", rows.Err())
	}
	return diarias, nil
}

func (r *PgxDiariaRepository) UpdateDiaria(ctx context.Context, diaria domain.Diaria) (*domain.Diaria, error) {
	query := `
		UPDATE diarias
		SET data = $1, valor = $2, status = $3, observacao = $4, funcionario_id = $5, cliente_id = $6, updated_at = now()
		WHERE id = $7
		RETURNING id, data, valor, status, observacao, funcionario_id, cliente_id, created_at, updated_at;
	`
	updated, err := scanDiaria(r.Pool.QueryRow(ctx, query,
		diaria.Data, diaria.Valor, diaria.Status, diaria.Observacao, diaria.FuncionarioID, diaria.ClienteID, diaria.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateConstraintError(err, "failed to update diaria")
	}
	return updated, nil
}
