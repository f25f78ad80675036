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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.PasswordHash, &u.Papel, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (nome, email, password_hash, papel, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, nome, email, password_hash, papel, status, created_at, updated_at;
	`
	created, err := scanUser(r.Pool.QueryRow(ctx, query,
		user.Nome, user.Email, user.PasswordHash, user.Papel, user.Status))
	if err != nil {
		return nil, translateConstraintError(err, "failed to insert user")
	}
	return created, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, nome, email, password_hash, papel, status, created_at, updated_at
		FROM users
		WHERE id = $1;
	`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by id %d: %w", id, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, nome, email, password_hash, papel, status, created_at, updated_at
		FROM users
		WHERE email = $1;
	`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, nome, email, password_hash, papel, status, created_at, updated_at
		FROM users
		ORDER BY nome ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.PasswordHash, &u.Papel, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET nome = $1, email = $2, password_hash = $3, papel = $4, status = $5, updated_at = now()
		WHERE id = $6
		RETURNING id, nome, email, password_hash, papel, status, created_at, updated_at;
	`
	updated, err := scanUser(r.Pool.QueryRow(ctx, query,
		user.Nome, user.Email, user.PasswordHash, user.Papel, user.Status, user.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateConstraintError(err, "failed to update user")
	}
	return updated, nil
}
