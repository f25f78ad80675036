package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portsrepo "github.com/gestorobras/gestor_diarias_app/internal/core/ports/repositories"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
)

type diariaService struct {
	BaseService
	diariaRepo      portsrepo.DiariaRepository
	funcionarioRepo portsrepo.FuncionarioRepository
	clienteRepo     portsrepo.ClienteRepository
}

// NewDiariaService creates the lifecycle service for daily work entries.
// The funcionario and cliente repositories back the foreign key checks.
func NewDiariaService(diariaRepo portsrepo.DiariaRepository, funcionarioRepo portsrepo.FuncionarioRepository, clienteRepo portsrepo.ClienteRepository) portssvc.DiariaSvcFacade {
	return &diariaService{diariaRepo: diariaRepo, funcionarioRepo: funcionarioRepo, clienteRepo: clienteRepo}
}

var _ portssvc.DiariaSvcFacade = (*diariaService)(nil)

func (s *diariaService) checkReferences(ctx context.Context, funcionarioID, clienteID *int64) error {
	if funcionarioID != nil {
		if _, err := s.funcionarioRepo.FindFuncionarioByID(ctx, *funcionarioID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("funcionarioId %d: %w", *funcionarioID, apperrors.ErrInvalidReference)
			}
			return fmt.Errorf("failed to verify funcionario %d: %w", *funcionarioID, err)
		}
	}
	if clienteID != nil {
		if _, err := s.clienteRepo.FindClienteByID(ctx, *clienteID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("clienteId %d: %w", *clienteID, apperrors.ErrInvalidReference)
			}
			return fmt.Errorf("failed to verify cliente %d: %w", *clienteID, err)
		}
	}
	return nil
}

func (s *diariaService) CreateDiaria(ctx context.Context, req dto.CreateDiariaRequest) (*domain.Diaria, error) {
	if !req.Valor.IsPositive() {
		return nil, fmt.Errorf("valor must be greater than zero: %w", apperrors.ErrValidation)
	}
	if err := s.checkReferences(ctx, &req.FuncionarioID, &req.ClienteID); err != nil {
		return nil, err
	}

	data, err := time.Parse(dto.DiariaDateLayout, req.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid data %q: %w", req.Data, apperrors.ErrValidation)
	}

	status := domain.DiariaPendente
	if req.Status != "" {
		status = domain.DiariaStatus(req.Status)
	}

	diaria := domain.Diaria{
		Data:          data,
		Valor:         req.Valor,
		Status:        status,
		Observacao:    req.Observacao,
		FuncionarioID: req.FuncionarioID,
		ClienteID:     req.ClienteID,
	}

	created, err := s.diariaRepo.CreateDiaria(ctx, diaria)
	if err != nil {
		return nil, fmt.Errorf("failed to create diaria: %w", err)
	}
	s.LogInfo(ctx, "Diaria created", slog.Int64("diaria_id", created.ID), slog.String("valor", created.Valor.String()))
	return created, nil
}

func (s *diariaService) ListDiarias(ctx context.Context, filter domain.DiariaFilter) ([]domain.DiariaWithNames, error) {
	diarias, err := s.diariaRepo.FindDiarias(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list diarias: %w", err)
	}
	return diarias, nil
}

func (s *diariaService) GetDiariaByID(ctx context.Context, id int64) (*domain.DiariaWithNames, error) {
	return s.diariaRepo.FindDiariaByID(ctx, id)
}

func (s *diariaService) UpdateDiaria(ctx context.Context, id int64, req dto.UpdateDiariaRequest) (*domain.Diaria, error) {
	found, err := s.diariaRepo.FindDiariaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	diaria := found.Diaria

	if req.Status != nil {
		next := domain.DiariaStatus(*req.Status)
		if !diaria.Status.CanTransitionTo(next) {
			s.LogWarn(ctx, "Diaria status transition rejected",
				slog.Int64("diaria_id", id),
				slog.String("from", string(diaria.Status)),
				slog.String("to", string(next)))
			return nil, fmt.Errorf("diaria status %s cannot become %s: %w", diaria.Status, next, apperrors.ErrInvalidState)
		}
		diaria.Status = next
	}

	var newFuncionarioID, newClienteID *int64
	if req.FuncionarioID != nil && *req.FuncionarioID != diaria.FuncionarioID {
		newFuncionarioID = req.FuncionarioID
	}
	if req.ClienteID != nil && *req.ClienteID != diaria.ClienteID {
		newClienteID = req.ClienteID
	}
	if err := s.checkReferences(ctx, newFuncionarioID, newClienteID); err != nil {
		return nil, err
	}
	if req.FuncionarioID != nil {
		diaria.FuncionarioID = *req.FuncionarioID
	}
	if req.ClienteID != nil {
		diaria.ClienteID = *req.ClienteID
	}

	if req.Valor != nil {
		if !req.Valor.IsPositive() {
			return nil, fmt.Errorf("valor must be greater than zero: %w", apperrors.ErrValidation)
		}
		diaria.Valor = *req.Valor
	}
	if req.Data != nil {
		data, err := time.Parse(dto.DiariaDateLayout, *req.Data)
		if err != nil {
			return nil, fmt.Errorf("invalid data %q: %w", *req.Data, apperrors.ErrValidation)
		}
		diaria.Data = data
	}
	if req.Observacao != nil {
		diaria.Observacao = *req.Observacao
	}

	updated, err := s.diariaRepo.UpdateDiaria(ctx, diaria)
	if err != nil {
		return nil, fmt.Errorf("failed to update diaria %d: %w", id, err)
	}
	s.LogInfo(ctx, "Diaria updated", slog.Int64("diaria_id", id))
	return updated, nil
}

func (s *diariaService) CancelDiaria(ctx context.Context, id int64) error {
	found, err := s.diariaRepo.FindDiariaByID(ctx, id)
	if err != nil {
		return err
	}
	// Cancellation bypasses the transition table: the soft delete forces
	// Cancelado from any state, and is idempotent.
	if found.Status == domain.DiariaCancelado {
		return nil
	}
	diaria := found.Diaria
	diaria.Status = domain.DiariaCancelado
	if _, err := s.diariaRepo.UpdateDiaria(ctx, diaria); err != nil {
		return fmt.Errorf("failed to cancel diaria %d: %w", id, err)
	}
	s.LogInfo(ctx, "Diaria cancelled", slog.Int64("diaria_id", id))
	return nil
}
