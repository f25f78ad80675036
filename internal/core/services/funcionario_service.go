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

type funcionarioService struct {
	BaseService
	funcionarioRepo portsrepo.FuncionarioRepository
	empresaRepo     portsrepo.EmpresaRepository
}

// NewFuncionarioService creates the lifecycle service for workers.
func NewFuncionarioService(funcionarioRepo portsrepo.FuncionarioRepository, empresaRepo portsrepo.EmpresaRepository) portssvc.FuncionarioSvcFacade {
	return &funcionarioService{funcionarioRepo: funcionarioRepo, empresaRepo: empresaRepo}
}

var _ portssvc.FuncionarioSvcFacade = (*funcionarioService)(nil)

func (s *funcionarioService) checkEmpresaExists(ctx context.Context, empresaID int64) error {
	_, err := s.empresaRepo.FindEmpresaByID(ctx, empresaID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("empresaId %d: %w", empresaID, apperrors.ErrInvalidReference)
	}
	if err != nil {
		return fmt.Errorf("failed to verify empresa %d: %w", empresaID, err)
	}
	return nil
}

// checkUniqueness rejects cpf/email values already held by another worker.
// excludeID skips the row being updated; pass 0 on create.
func (s *funcionarioService) checkUniqueness(ctx context.Context, cpf, email string, excludeID int64) error {
	if cpf != "" {
		existing, err := s.funcionarioRepo.FindFuncionarioByCPF(ctx, cpf)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check cpf uniqueness: %w", err)
		}
		if existing != nil && existing.ID != excludeID {
			return fmt.Errorf("cpf: %w", apperrors.ErrDuplicate)
		}
	}
	if email != "" {
		existing, err := s.funcionarioRepo.FindFuncionarioByEmail(ctx, email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if existing != nil && existing.ID != excludeID {
			return fmt.Errorf("email: %w", apperrors.ErrDuplicate)
		}
	}
	return nil
}

func (s *funcionarioService) CreateFuncionario(ctx context.Context, req dto.CreateFuncionarioRequest) (*domain.Funcionario, error) {
	if err := s.checkEmpresaExists(ctx, req.EmpresaID); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, req.CPF, req.Email, 0); err != nil {
		return nil, err
	}

	tipo := domain.FuncionarioTreinamento
	if req.Tipo != "" {
		tipo = domain.FuncionarioTipo(req.Tipo)
	}
	status := domain.FuncionarioAtivo
	if req.Status != "" {
		status = domain.FuncionarioStatus(req.Status)
	}

	funcionario := domain.Funcionario{
		Nome:      req.Nome,
		CPF:       req.CPF,
		Email:     req.Email,
		Telefone:  req.Telefone,
		Tipo:      tipo,
		Status:    status,
		EmpresaID: req.EmpresaID,
	}

	created, err := s.funcionarioRepo.CreateFuncionario(ctx, funcionario)
	if err != nil {
		return nil, fmt.Errorf("failed to create funcionario: %w", err)
	}
	s.LogInfo(ctx, "Funcionario created", slog.Int64("funcionario_id", created.ID), slog.String("tipo", string(created.Tipo)))
	return created, nil
}

func (s *funcionarioService) ListFuncionarios(ctx context.Context, filter domain.FuncionarioFilter) ([]domain.FuncionarioWithEmpresa, error) {
	funcionarios, err := s.funcionarioRepo.FindFuncionarios(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list funcionarios: %w", err)
	}
	return funcionarios, nil
}

func (s *funcionarioService) GetFuncionarioByID(ctx context.Context, id int64) (*domain.FuncionarioWithEmpresa, error) {
	return s.funcionarioRepo.FindFuncionarioByID(ctx, id)
}

func (s *funcionarioService) UpdateFuncionario(ctx context.Context, id int64, req dto.UpdateFuncionarioRequest) (*domain.Funcionario, error) {
	found, err := s.funcionarioRepo.FindFuncionarioByID(ctx, id)
	if err != nil {
		return nil, err
	}
	funcionario := found.Funcionario

	if req.EmpresaID != nil && *req.EmpresaID != funcionario.EmpresaID {
		if err := s.checkEmpresaExists(ctx, *req.EmpresaID); err != nil {
			return nil, err
		}
		funcionario.EmpresaID = *req.EmpresaID
	}

	newCPF, newEmail := "", ""
	if req.CPF != nil && *req.CPF != funcionario.CPF {
		newCPF = *req.CPF
	}
	if req.Email != nil && *req.Email != funcionario.Email {
		newEmail = *req.Email
	}
	if err := s.checkUniqueness(ctx, newCPF, newEmail, id); err != nil {
		return nil, err
	}
	if req.CPF != nil {
		funcionario.CPF = *req.CPF
	}
	if req.Email != nil {
		funcionario.Email = *req.Email
	}
	if req.Nome != nil {
		funcionario.Nome = *req.Nome
	}
	if req.Telefone != nil {
		funcionario.Telefone = *req.Telefone
	}
	if req.Status != nil {
		funcionario.Status = domain.FuncionarioStatus(*req.Status)
	}

	updated, err := s.funcionarioRepo.UpdateFuncionario(ctx, funcionario)
	if err != nil {
		return nil, fmt.Errorf("failed to update funcionario %d: %w", id, err)
	}
	s.LogInfo(ctx, "Funcionario updated", slog.Int64("funcionario_id", id))
	return updated, nil
}

func (s *funcionarioService) DeactivateFuncionario(ctx context.Context, id int64) error {
	found, err := s.funcionarioRepo.FindFuncionarioByID(ctx, id)
	if err != nil {
		return err
	}
	if found.Status == domain.FuncionarioInativo {
		return nil
	}
	funcionario := found.Funcionario
	funcionario.Status = domain.FuncionarioInativo
	if _, err := s.funcionarioRepo.UpdateFuncionario(ctx, funcionario); err != nil {
		return fmt.Errorf("failed to deactivate funcionario %d: %w", id, err)
	}
	s.LogInfo(ctx, "Funcionario deactivated", slog.Int64("funcionario_id", id))
	return nil
}

func (s *funcionarioService) ConvertFuncionario(ctx context.Context, id int64) (*domain.Funcionario, error) {
	found, err := s.funcionarioRepo.FindFuncionarioByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Conversion is one way. Already-converted workers report an invalid
	// state, not a missing row.
	if !found.Tipo.CanConvert() {
		s.LogWarn(ctx, "Conversion rejected, funcionario not in training", slog.Int64("funcionario_id", id), slog.String("tipo", string(found.Tipo)))
		return nil, fmt.Errorf("funcionario %d is %s: %w", id, found.Tipo, apperrors.ErrInvalidState)
	}

	funcionario := found.Funcionario
	funcionario.Tipo = domain.FuncionarioAutonomo
	converted, err := s.funcionarioRepo.UpdateFuncionario(ctx, funcionario)
	if err != nil {
		return nil, fmt.Errorf("failed to convert funcionario %d: %w", id, err)
	}
	s.LogInfo(ctx, "Funcionario converted to Autônomo", slog.Int64("funcionario_id", id))
	return converted, nil
}
