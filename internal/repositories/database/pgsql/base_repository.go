package pgsql

import (
	"errors"
	"fmt"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the repositories translate into app errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BaseRepository holds the shared connection pool.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// translateConstraintError maps unique and foreign key violations onto the
// application error taxonomy. The service layer checks these rules first;
// the database constraints are the second line of defense under concurrent
// writes.
func translateConstraintError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s (%s): %w", op, pgErr.ConstraintName, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s (%s): %w", op, pgErr.ConstraintName, apperrors.ErrInvalidReference)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
