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

type PgxClienteRepository struct {
	BaseRepository
}

func newPgxClienteRepository(db *pgxpool.Pool) portsrepo.ClienteRepository {
	return &PgxClienteRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ClienteRepository = (*PgxClienteRepository)(nil)

func scanCliente(row pgx.Row) (*domain.Cliente, error) {
	var c domain.Cliente
	err := row.Scan(&c.ID, &c.Nome, &c.CNPJ, &c.Endereco, &c.Telefone, &c.Status, &c.EmpresaID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxClienteRepository) CreateCliente(ctx context.Context, cliente domain.Cliente) (*domain.Cliente, error) {
	query := `
		INSERT INTO clientes (nome, cnpj, endereco, telefone, status, empresa_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, nome, cnpj, endereco, telefone, status, empresa_id, created_at, updated_at;
	`
	created, err := scanCliente(r.Pool.QueryRow(ctx, query,
		cliente.Nome, cliente.CNPJ, cliente.Endereco, cliente.Telefone, cliente.Status, cliente.EmpresaID))
	if err != nil {
		return nil, translateConstraintError(err, "failed to insert cliente")
	}
	return created, nil
}

func (r *PgxClienteRepository) FindClienteByID(ctx context.Context, id int64) (*domain.ClienteWithEmpresa, error) {
	query := `
		SELECT c.id, c.nome, c.cnpj, c.endereco, c.telefone, c.status, c.empresa_id, c.created_at, c.updated_at,
		       e.nome AS empresa_nome
		FROM clientes c
		JOIN empresas e ON e.id = c.empresa_id
		WHERE c.id = $1;
	`
	var cw domain.ClienteWithEmpresa
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&cw.ID, &cw.Nome, &cw.CNPJ, &cw.Endereco, &cw.Telefone, &cw.Status, &cw.EmpresaID,
		&cw.CreatedAt, &cw.UpdatedAt, &cw.EmpresaNome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cliente by id %d: %w", id, err)
	}
	return &cw, nil
}

func (r *PgxClienteRepository) FindClienteByCNPJ(ctx context.Context, cnpj string) (*domain.Cliente, error) {
	query := `
		SELECT id, nome, cnpj, endereco, telefone, status, empresa_id, created_at, updated_at
		FROM clientes
		WHERE cnpj = $1 AND cnpj <> '';
	`
	cliente, err := scanCliente(r.Pool.QueryRow(ctx, query, cnpj))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cliente by cnpj: %w", err)
	}
	return cliente, nil
}

func (r *PgxClienteRepository) FindClientes(ctx context.Context, filter portsrepo.ClienteFilter) ([]domain.ClienteWithEmpresa, error) {
	query := `
		SELECT c.id, c.nome, c.cnpj, c.endereco, c.telefone, c.status, c.empresa_id, c.created_at, c.updated_at,
		       e.nome AS empresa_nome
		FROM clientes c
		JOIN empresas e ON e.id = c.empresa_id
		WHERE ($1::bigint IS NULL OR c.empresa_id = $1)
		  AND ($2::text IS NULL OR c.status = $2)
		ORDER BY c.nome ASC;
	`
	rows, err := r.Pool.Query(ctx, query, filter.EmpresaID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to query clientes: %w", err)
	}
	defer rows.Close()

	clientes := []domain.ClienteWithEmpresa{}
	for rows.Next() {
		var cw domain.ClienteWithEmpresa
		if err := rows.Scan(
			&cw.ID, &cw.Nome, &cw.CNPJ, &cw.Endereco, &cw.Telefone, &cw.Status, &cw.EmpresaID,
			&cw.CreatedAt, &cw.UpdatedAt, &cw.EmpresaNome); err != nil {
			return nil, fmt.Errorf("failed to scan cliente row: %w", err)
		}
		clientes = append(clientes, cw)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cliente rows: %w", rows.Err())
	}
	return clientes, nil
}

func (r *PgxClienteRepository) UpdateCliente(ctx context.Context, cliente domain.Cliente) (*domain.Cliente, error) {
	query := `
		UPDATE clientes
		SET nome = $1, cnpj = $2, endereco = $3, telefone = $4, status = $5, empresa_id = $6, updated_at = now()
		WHERE id = $7
		RETURNING id, nome, cnpj, endereco, telefone, status, empresa_id, created_at, updated_at;
	`
	updated, err := scanCliente(r.Pool.QueryRow(ctx, query,
		cliente.Nome, cliente.CNPJ, cliente.Endereco, cliente.Telefone, cliente.Status, cliente.EmpresaID, cliente.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateConstraintError(err, "failed to update cliente")
	}
	return updated, nil
}
