package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portsrepo "github.com/gestorobras/gestor_diarias_app/internal/core/ports/repositories"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
)

type clienteService struct {
	BaseService
	clienteRepo portsrepo.ClienteRepository
	empresaRepo portsrepo.EmpresaRepository
}

// NewClienteService creates the lifecycle service for job-sites. The empresa
// repository backs the foreign key existence checks.
func NewClienteService(clienteRepo portsrepo.ClienteRepository, empresaRepo portsrepo.EmpresaRepository) portssvc.ClienteSvcFacade {
	return &clienteService{clienteRepo: clienteRepo, empresaRepo: empresaRepo}
}

var _ portssvc.ClienteSvcFacade = (*clienteService)(nil)

// checkEmpresaExists rejects dangling empresa references. The referenced row
// only needs to exist, not to be active.
func (s *clienteService) checkEmpresaExists(ctx context.Context, empresaID int64) error {
	_, err := s.empresaRepo.FindEmpresaByID(ctx, empresaID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("empresaId %d: %w", empresaID, apperrors.ErrInvalidReference)
	}
	if err != nil {
		return fmt.Errorf("failed to verify empresa %d: %w", empresaID, err)
	}
	return nil
}

func (s *clienteService) CreateCliente(ctx context.Context, req dto.CreateClienteRequest) (*domain.Cliente, error) {
	if err := s.checkEmpresaExists(ctx, req.EmpresaID); err != nil {
		return nil, err
	}

	if req.CNPJ != "" {
		existing, err := s.clienteRepo.FindClienteByCNPJ(ctx, req.CNPJ)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check cnpj uniqueness: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("cnpj: %w", apperrors.ErrDuplicate)
		}
	}

	status := domain.ClienteAtivo
	if req.Status != "" {
		status = domain.ClienteStatus(req.Status)
	}

	cliente := domain.Cliente{
		Nome:      req.Nome,
		CNPJ:      req.CNPJ,
		Endereco:  req.Endereco,
		Telefone:  req.Telefone,
		Status:    status,
		EmpresaID: req.EmpresaID,
	}

	created, err := s.clienteRepo.CreateCliente(ctx, cliente)
	if err != nil {
		return nil, fmt.Errorf("failed to create cliente: %w", err)
	}
	s.LogInfo(ctx, "Cliente created", slog.Int64("cliente_id", created.ID), slog.Int64("empresa_id", created.EmpresaID))
	return created, nil
}

func (s *clienteService) ListClientes(ctx context.Context, filter portsrepo.ClienteFilter) ([]domain.ClienteWithEmpresa, error) {
	clientes, err := s.clienteRepo.FindClientes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list clientes: %w", err)
	}
	return clientes, nil
}

func (s *clienteService) GetClienteByID(ctx context.Context, id int64) (*domain.ClienteWithEmpresa, error) {
	return s.clienteRepo.FindClienteByID(ctx, id)
}

func (s *clienteService) UpdateCliente(ctx context.Context, id int64, req dto.UpdateClienteRequest) (*domain.Cliente, error) {
	found, err := s.clienteRepo.FindClienteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cliente := found.Cliente

	// A changed foreign key is re-verified the same way as on create.
	if req.EmpresaID != nil && *req.EmpresaID != cliente.EmpresaID {
		if err := s.checkEmpresaExists(ctx, *req.EmpresaID); err != nil {
			return nil, err
		}
		cliente.EmpresaID = *req.EmpresaID
	}
	if req.CNPJ != nil && *req.CNPJ != cliente.CNPJ {
		if *req.CNPJ != "" {
			existing, err := s.clienteRepo.FindClienteByCNPJ(ctx, *req.CNPJ)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to check cnpj uniqueness: %w", err)
			}
			if existing != nil && existing.ID != id {
				return nil, fmt.Errorf("cnpj: %w", apperrors.ErrDuplicate)
			}
		}
		cliente.CNPJ = *req.CNPJ
	}
	if req.Nome != nil {
		cliente.Nome = *req.Nome
	}
	if req.Endereco != nil {
		cliente.Endereco = *req.Endereco
	}
	if req.Telefone != nil {
		cliente.Telefone = *req.Telefone
	}
	if req.Status != nil {
		cliente.Status = domain.ClienteStatus(*req.Status)
	}

	updated, err := s.clienteRepo.UpdateCliente(ctx, cliente)
	if err != nil {
		return nil, fmt.Errorf("failed to update cliente %d: %w", id, err)
	}
	s.LogInfo(ctx, "Cliente updated", slog.Int64("cliente_id", id))
	return updated, nil
}

func (s *clienteService) DeactivateCliente(ctx context.Context, id int64) error {
	found, err := s.clienteRepo.FindClienteByID(ctx, id)
	if err != nil {
		return err
	}
	if found.Status == domain.ClienteInativo {
		return nil
	}
	cliente := found.Cliente
	cliente.Status = domain.ClienteInativo
	if _, err := s.clienteRepo.UpdateCliente(ctx, cliente); err != nil {
		return fmt.Errorf("failed to deactivate cliente %d: %w", id, err)
	}
	s.LogInfo(ctx, "Cliente deactivated", slog.Int64("cliente_id", id))
	return nil
}
