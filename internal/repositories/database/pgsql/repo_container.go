package pgsql

import (
	portsrepo "github.com/gestorobras/gestor_diarias_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository over one pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmpresaRepo:     newPgxEmpresaRepository(db),
		ClienteRepo:     newPgxClienteRepository(db),
		FuncionarioRepo: newPgxFuncionarioRepository(db),
		DiariaRepo:      newPgxDiariaRepository(db),
		UserRepo:        newPgxUserRepository(db),
		ReportingRepo:   newPgxReportingRepository(db),
	}
}
