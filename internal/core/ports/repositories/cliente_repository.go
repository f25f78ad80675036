package repositories

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
)

// ClienteFilter narrows cliente listings. Nil fields are not applied.
type ClienteFilter struct {
	EmpresaID *int64
	Status    *domain.ClienteStatus
}

// ClienteRepository persists client job-sites.
type ClienteRepository interface {
	CreateCliente(ctx context.Context, cliente domain.Cliente) (*domain.Cliente, error)
	// FindClienteByID returns the cliente joined with its empresa's nome.
	FindClienteByID(ctx context.Context, id int64) (*domain.ClienteWithEmpresa, error)
	// FindClienteByCNPJ matches the stored cnpj exactly; empty cnpjs are never matched.
	FindClienteByCNPJ(ctx context.Context, cnpj string) (*domain.Cliente, error)
	// FindClientes lists clientes ordered by nome, joined with empresa nome.
	FindClientes(ctx context.Context, filter ClienteFilter) ([]domain.ClienteWithEmpresa, error)
	UpdateCliente(ctx context.Context, cliente domain.Cliente) (*domain.Cliente, error)
}
