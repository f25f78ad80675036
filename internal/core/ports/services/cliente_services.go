package services

import (
	"context"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portsrepo "github.com/gestorobras/gestor_diarias_app/internal/core/ports/repositories"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
)

// ClienteSvcFacade is the lifecycle surface for job-sites.
type ClienteSvcFacade interface {
	CreateCliente(ctx context.Context, req dto.CreateClienteRequest) (*domain.Cliente, error)
	ListClientes(ctx context.Context, filter portsrepo.ClienteFilter) ([]domain.ClienteWithEmpresa, error)
	GetClienteByID(ctx context.Context, id int64) (*domain.ClienteWithEmpresa, error)
	UpdateCliente(ctx context.Context, id int64, req dto.UpdateClienteRequest) (*domain.Cliente, error)
	// DeactivateCliente is the soft delete; it is idempotent.
	DeactivateCliente(ctx context.Context, id int64) error
}
