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

type PgxEmpresaRepository struct {
	BaseRepository
}

func newPgxEmpresaRepository(db *pgxpool.Pool) portsrepo.EmpresaRepository {
	return &PgxEmpresaRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.EmpresaRepository = (*PgxEmpresaRepository)(nil)

func scanEmpresa(row pgx.Row) (*domain.Empresa, error) {
	var e domain.Empresa
	err := row.Scan(&e.ID, &e.Nome, &e.CNPJ, &e.Endereco, &e.Telefone, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxEmpresaRepository) CreateEmpresa(ctx context.Context, empresa domain.Empresa) (*domain.Empresa, error) {
	query := `
		INSERT INTO empresas (nome, cnpj, endereco, telefone, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, nome, cnpj, endereco, telefone, status, created_at, updated_at;
	`
	created, err := scanEmpresa(r.Pool.QueryRow(ctx, query,
		empresa.Nome, empresa.CNPJ, empresa.Endereco, empresa.Telefone, empresa.Status))
	if err != nil {
		return nil, translateConstraintError(err, "failed to insert empresa")
	}
	return created, nil
}

func (r *PgxEmpresaRepository) FindEmpresaByID(ctx context.Context, id int64) (*domain.Empresa, error) {
	query := `
		SELECT id, nome, cnpj, endereco, telefone, status, created_at, updated_at
		FROM empresas
		WHERE id = $1;
	`
	empresa, err := scanEmpresa(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find empresa by id %d: %w", id, err)
	}
	return empresa, nil
}

func (r *PgxEmpresaRepository) FindEmpresaByCNPJ(ctx context.Context, cnpj string) (*domain.Empresa, error) {
	query := `
		SELECT id, nome, cnpj, endereco, telefone, status, created_at, updated_at
		FROM empresas
		WHERE cnpj = $1;
	`
	empresa, err := scanEmpresa(r.Pool.QueryRow(ctx, query, cnpj))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find empresa by cnpj: %w", err)
	}
	return empresa, nil
}

func (r *PgxEmpresaRepository) FindEmpresas(ctx context.Context, status *domain.EmpresaStatus) ([]domain.Empresa, error) {
	query := `
		SELECT id, nome, cnpj, endereco, telefone, status, created_at, updated_at
		FROM empresas
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY nome ASC;
	`
	rows, err := r.Pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query empresas: %w", err)
	}
	defer rows.Close()

	empresas := []domain.Empresa{}
	for rows.Next() {
		var e domain.Empresa
		if err := rows.Scan(&e.ID, &e.Nome, &e.CNPJ, &e.Endereco, &e.Telefone, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan empresa row: %w", err)
		}
		empresas = append(empresas, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating empresa rows: %w", rows.Err())
	}
	return empresas, nil
}

func (r *PgxEmpresaRepository) UpdateEmpresa(ctx context.Context, empresa domain.Empresa) (*domain.Empresa, error) {
	query := `
		UPDATE empresas
		SET nome = $1, cnpj = $2, endereco = $3, telefone = $4, status = $5, updated_at = now()
		WHERE id = $6
		RETURNING id, nome, cnpj, endereco, telefone, status, created_at, updated_at;
	`
	updated, err := scanEmpresa(r.Pool.QueryRow(ctx, query,
		empresa.Nome, empresa.CNPJ, empresa.Endereco, empresa.Telefone, empresa.Status, empresa.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateConstraintError(err, "failed to update empresa")
	}
	return updated, nil
}

func (r *PgxEmpresaRepository) CountDependents(ctx context.Context, empresaID int64) (int64, error) {
	// Dependents are counted regardless of status: an inactive cliente
	// still references the empresa.
	query := `
		SELECT
			(SELECT COUNT(*) FROM clientes WHERE empresa_id = $1) +
			(SELECT COUNT(*) FROM funcionarios WHERE empresa_id = $1);
	`
	var count int64
	if err := r.Pool.QueryRow(ctx, query, empresaID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count dependents of empresa %d: %w", empresaID, err)
	}
	return count, nil
}

func (r *PgxEmpresaRepository) DeleteEmpresa(ctx context.Context, id int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM empresas WHERE id = $1;`, id)
	if err != nil {
		return translateConstraintError(err, "failed to delete empresa")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
