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

type PgxFuncionarioRepository struct {
	BaseRepository
}

func newPgxFuncionarioRepository(db *pgxpool.Pool) portsrepo.FuncionarioRepository {
	return &PgxFuncionarioRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.FuncionarioRepository = (*PgxFuncionarioRepository)(nil)

func scanFuncionario(row pgx.Row) (*domain.Funcionario, error) {
	var f domain.Funcionario
	err := row.Scan(&f.ID, &f.Nome, &f.CPF, &f.Email, &f.Telefone, &f.Tipo, &f.Status, &f.EmpresaID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PgxFuncionarioRepository) CreateFuncionario(ctx context.Context, funcionario domain.Funcionario) (*domain.Funcionario, error) {
	query := `
		INSERT INTO funcionarios (nome, cpf, email, telefone, tipo, status, empresa_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, nome, cpf, email, telefone, tipo, status, empresa_id, created_at, updated_at;
	`
	created, err := scanFuncionario(r.Pool.QueryRow(ctx, query,
		funcionario.Nome, funcionario.CPF, funcionario.Email, funcionario.Telefone,
		funcionario.Tipo, funcionario.Status, funcionario.EmpresaID))
	if err != nil {
		return nil, translateConstraintError(err, "failed to insert funcionario")
	}
	return created, nil
}

func (r *PgxFuncionarioRepository) FindFuncionarioByID(ctx context.Context, id int64) (*domain.FuncionarioWithEmpresa, error) {
	query := `
		SELECT f.id, f.nome, f.cpf, f.email, f.telefone, f.tipo, f.status, f.empresa_id, f.created_at, f.updated_at,
		       e.nome AS empresa_nome
		FROM funcionarios f
		JOIN empresas e ON e.id = f.empresa_id
		WHERE f.id = $1;
	`
	var fw domain.FuncionarioWithEmpresa
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&fw.ID, &fw.Nome, &fw.CPF, &fw.Email, &fw.Telefone, &fw.Tipo, &fw.Status, &fw.EmpresaID,
		&fw.CreatedAt, &fw.UpdatedAt, &fw.EmpresaNome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find funcionario by id %d: %w", id, err)
	}
	return &fw, nil
}

func (r *PgxFuncionarioRepository) FindFuncionarioByCPF(ctx context.Context, cpf string) (*domain.Funcionario, error) {
	query := `
		SELECT id, nome, cpf, email, telefone, tipo, status, empresa_id, created_at, updated_at
		FROM funcionarios
		WHERE cpf = $1;
	`
	funcionario, err := scanFuncionario(r.Pool.QueryRow(ctx, query, cpf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find funcionario by cpf: %w", err)
	}
	return funcionario, nil
}

func (r *PgxFuncionarioRepository) FindFuncionarioByEmail(ctx context.Context, email string) (*domain.Funcionario, error) {
	query := `
		SELECT id, nome, cpf, email, telefone, tipo, status, empresa_id, created_at, updated_at
		FROM funcionarios
		WHERE email = $1 AND email <> '';
	`
	funcionario, err := scanFuncionario(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find funcionario by email: %w", err)
	}
	return funcionario, nil
}

func (r *PgxFuncionarioRepository) FindFuncionarios(ctx context.Context, filter domain.FuncionarioFilter) ([]domain.FuncionarioWithEmpresa, error) {
	query := `
		SELECT f.id, f.nome, f.cpf, f.email, f.telefone, f.tipo, f.status, f.empresa_id, f.created_at, f.updated_at,
		       e.nome AS empresa_nome
		FROM funcionarios f
		JOIN empresas e ON e.id = f.empresa_id
		WHERE ($1::bigint IS NULL OR f.empresa_id = $1)
		  AND ($2::text IS NULL OR f.status = $2)
		  AND ($3::text IS NULL OR f.tipo = $3)
		ORDER BY f.nome ASC;
	`
	rows, err := r.Pool.Query(ctx, query, filter.EmpresaID, filter.Status, filter.Tipo)
	if err != nil {
		return nil, fmt.Errorf("failed to query funcionarios: %w", err)
	}
	defer rows.Close()

	funcionarios := []domain.FuncionarioWithEmpresa{}
	for rows.Next() {
		var fw domain.FuncionarioWithEmpresa
		if err := rows.Scan(
			&fw.ID, &fw.Nome, &fw.CPF, &fw.Email, &fw.Telefone, &fw.Tipo, &fw.Status, &fw.EmpresaID,
			&fw.CreatedAt, &fw.UpdatedAt, &fw.EmpresaNome); err != nil {
			return nil, fmt.Errorf("failed to scan funcionario row: %w", err)
		}
		funcionarios = append(funcionarios, fw)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating funcionario rows: %w", rows.Err())
	}
	return funcionarios, nil
}

func (r *PgxFuncionarioRepository) UpdateFuncionario(ctx context.Context, funcionario domain.Funcionario) (*domain.Funcionario, error) {
	query := `
		UPDATE funcionarios
		SET nome = $1, cpf = $2, email = $3, telefone = $4, tipo = $5, status = $6, empresa_id = $7, updated_at = now()
		WHERE id = $8
		RETURNING id, nome, cpf, email, telefone, tipo, status, empresa_id, created_at, updated_at;
	`
	updated, err := scanFuncionario(r.Pool.QueryRow(ctx, query,
		funcionario.Nome, funcionario.CPF, funcionario.Email, funcionario.Telefone,
		funcionario.Tipo, funcionario.Status, funcionario.EmpresaID, funcionario.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateConstraintError(err, "failed to update funcionario")
	}
	return updated, nil
}
