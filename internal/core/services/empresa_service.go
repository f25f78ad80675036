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

type empresaService struct {
	BaseService
	empresaRepo portsrepo.EmpresaRepository
}

// NewEmpresaService creates the lifecycle service for contracting companies.
func NewEmpresaService(empresaRepo portsrepo.EmpresaRepository) portssvc.EmpresaSvcFacade {
	return &empresaService{empresaRepo: empresaRepo}
}

var _ portssvc.EmpresaSvcFacade = (*empresaService)(nil)

func (s *empresaService) CreateEmpresa(ctx context.Context, req dto.CreateEmpresaRequest) (*domain.Empresa, error) {
	// Duplicate check is a case-sensitive exact match on the stored string.
	existing, err := s.empresaRepo.FindEmpresaByCNPJ(ctx, req.CNPJ)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check cnpj uniqueness: %w", err)
	}
	if existing != nil {
		s.LogWarn(ctx, "Empresa with duplicate cnpj rejected", slog.String("cnpj", req.CNPJ))
		return nil, fmt.Errorf("cnpj: %w", apperrors.ErrDuplicate)
	}

	status := domain.EmpresaAtivo
	if req.Status != "" {
		status = domain.EmpresaStatus(req.Status)
	}

	empresa := domain.Empresa{
		Nome:     req.Nome,
		CNPJ:     req.CNPJ,
		Endereco: req.Endereco,
		Telefone: req.Telefone,
		Status:   status,
	}

	created, err := s.empresaRepo.CreateEmpresa(ctx, empresa)
	if err != nil {
		return nil, fmt.Errorf("failed to create empresa: %w", err)
	}
	s.LogInfo(ctx, "Empresa created", slog.Int64("empresa_id", created.ID))
	return created, nil
}

func (s *empresaService) ListEmpresas(ctx context.Context, status *domain.EmpresaStatus) ([]domain.Empresa, error) {
	empresas, err := s.empresaRepo.FindEmpresas(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list empresas: %w", err)
	}
	return empresas, nil
}

func (s *empresaService) GetEmpresaByID(ctx context.Context, id int64) (*domain.Empresa, error) {
	empresa, err := s.empresaRepo.FindEmpresaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return empresa, nil
}

func (s *empresaService) UpdateEmpresa(ctx context.Context, id int64, req dto.UpdateEmpresaRequest) (*domain.Empresa, error) {
	empresa, err := s.empresaRepo.FindEmpresaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Changing the cnpj re-runs the duplicate check excluding this row.
	if req.CNPJ != nil && *req.CNPJ != empresa.CNPJ {
		existing, err := s.empresaRepo.FindEmpresaByCNPJ(ctx, *req.CNPJ)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check cnpj uniqueness: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("cnpj: %w", apperrors.ErrDuplicate)
		}
		empresa.CNPJ = *req.CNPJ
	}
	if req.Nome != nil {
		empresa.Nome = *req.Nome
	}
	if req.Endereco != nil {
		empresa.Endereco = *req.Endereco
	}
	if req.Telefone != nil {
		empresa.Telefone = *req.Telefone
	}
	if req.Status != nil {
		empresa.Status = domain.EmpresaStatus(*req.Status)
	}

	updated, err := s.empresaRepo.UpdateEmpresa(ctx, *empresa)
	if err != nil {
		return nil, fmt.Errorf("failed to update empresa %d: %w", id, err)
	}
	s.LogInfo(ctx, "Empresa updated", slog.Int64("empresa_id", id))
	return updated, nil
}

func (s *empresaService) DeactivateEmpresa(ctx context.Context, id int64) error {
	empresa, err := s.empresaRepo.FindEmpresaByID(ctx, id)
	if err != nil {
		return err
	}
	// Idempotent: deactivating an already inactive empresa succeeds silently.
	if empresa.Status == domain.EmpresaInativo {
		return nil
	}
	empresa.Status = domain.EmpresaInativo
	if _, err := s.empresaRepo.UpdateEmpresa(ctx, *empresa); err != nil {
		return fmt.Errorf("failed to deactivate empresa %d: %w", id, err)
	}
	s.LogInfo(ctx, "Empresa deactivated", slog.Int64("empresa_id", id))
	return nil
}

func (s *empresaService) RestoreEmpresa(ctx context.Context, id int64) (*domain.Empresa, error) {
	empresa, err := s.empresaRepo.FindEmpresaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empresa.Status == domain.EmpresaAtivo {
		return empresa, nil
	}
	empresa.Status = domain.EmpresaAtivo
	restored, err := s.empresaRepo.UpdateEmpresa(ctx, *empresa)
	if err != nil {
		return nil, fmt.Errorf("failed to restore empresa %d: %w", id, err)
	}
	s.LogInfo(ctx, "Empresa restored", slog.Int64("empresa_id", id))
	return restored, nil
}

func (s *empresaService) ForceDeleteEmpresa(ctx context.Context, id int64) error {
	if _, err := s.empresaRepo.FindEmpresaByID(ctx, id); err != nil {
		return err
	}

	// Dependents of any status block the hard delete.
	count, err := s.empresaRepo.CountDependents(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count dependents of empresa %d: %w", id, err)
	}
	if count > 0 {
		s.LogWarn(ctx, "Force delete blocked by dependents", slog.Int64("empresa_id", id), slog.Int64("dependents", count))
		return fmt.Errorf("empresa has %d dependents: %w", count, apperrors.ErrDependencyConflict)
	}

	if err := s.empresaRepo.DeleteEmpresa(ctx, id); err != nil {
		return fmt.Errorf("failed to delete empresa %d: %w", id, err)
	}
	s.LogInfo(ctx, "Empresa deleted", slog.Int64("empresa_id", id))
	return nil
}
