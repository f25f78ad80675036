package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/core/services"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DiariaRepository ---
type MockDiariaRepository struct {
	mock.Mock
}

func (m *MockDiariaRepository) CreateDiaria(ctx context.Context, diaria domain.Diaria) (*domain.Diaria, error) {
	args := m.Called(ctx, diaria)
	var created *domain.Diaria
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Diaria)
	}
	return created, args.Error(1)
}

func (m *MockDiariaRepository) FindDiariaByID(ctx context.Context, id int64) (*domain.DiariaWithNames, error) {
	args := m.Called(ctx, id)
	var diaria *domain.DiariaWithNames
	if args.Get(0) != nil {
		diaria = args.Get(0).(*domain.DiariaWithNames)
	}
	return diaria, args.Error(1)
}

func (m *MockDiariaRepository) FindDiarias(ctx context.Context, filter domain.DiariaFilter) ([]domain.DiariaWithNames, error) {
	args := m.Called(ctx, filter)
	var diarias []domain.DiariaWithNames
	if args.Get(0) != nil {
		diarias = args.Get(0).([]domain.DiariaWithNames)
	}
	return diarias, args.Error(1)
}

func (m *MockDiariaRepository) UpdateDiaria(ctx context.Context, diaria domain.Diaria) (*domain.Diaria, error) {
	args := m.Called(ctx, diaria)
	var updated *domain.Diaria
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Diaria)
	}
	return updated, args.Error(1)
}

// --- Test Suite ---
type DiariaServiceTestSuite struct {
	suite.Suite
	mockDiariaRepo      *MockDiariaRepository
	mockFuncionarioRepo *MockFuncionarioRepository
	mockClienteRepo     *MockClienteRepository
	service             portssvc.DiariaSvcFacade
}

func (suite *DiariaServiceTestSuite) SetupTest() {
	suite.mockDiariaRepo = new(MockDiariaRepository)
	suite.mockFuncionarioRepo = new(MockFuncionarioRepository)
	suite.mockClienteRepo = new(MockClienteRepository)
	suite.service = services.NewDiariaService(suite.mockDiariaRepo, suite.mockFuncionarioRepo, suite.mockClienteRepo)
}

func (suite *DiariaServiceTestSuite) expectReferencesOK(ctx context.Context, funcionarioID, clienteID int64) {
	suite.mockFuncionarioRepo.On("FindFuncionarioByID", ctx, funcionarioID).
		Return(&domain.FuncionarioWithEmpresa{Funcionario: domain.Funcionario{ID: funcionarioID}}, nil).Once()
	suite.mockClienteRepo.On("FindClienteByID", ctx, clienteID).
		Return(&domain.ClienteWithEmpresa{Cliente: domain.Cliente{ID: clienteID}}, nil).Once()
}

func (suite *DiariaServiceTestSuite) TestCreateDiaria_DefaultsToPendente() {
	ctx := context.Background()
	req := dto.CreateDiariaRequest{
		Data:          "2026-08-15",
		Valor:         decimal.NewFromInt(250),
		FuncionarioID: 3,
		ClienteID:     5,
	}

	suite.expectReferencesOK(ctx, 3, 5)
	suite.mockDiariaRepo.On("CreateDiaria", ctx, mock.MatchedBy(func(d domain.Diaria) bool {
		return d.Status == domain.DiariaPendente &&
			d.Data.Equal(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)) &&
			d.Valor.Equal(decimal.NewFromInt(250))
	})).Return(&domain.Diaria{ID: 10, Status: domain.DiariaPendente, Valor: req.Valor}, nil).Once()

	created, err := suite.service.CreateDiaria(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DiariaPendente, created.Status)
	suite.mockDiariaRepo.AssertExpectations(suite.T())
}

func (suite *DiariaServiceTestSuite) TestCreateDiaria_NonPositiveValor() {
	ctx := context.Background()
	req := dto.CreateDiariaRequest{
		Data:          "2026-08-15",
		Valor:         decimal.Zero,
		FuncionarioID: 3,
		ClienteID:     5,
	}

	created, err := suite.service.CreateDiaria(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDiariaRepo.AssertNotCalled(suite.T(), "CreateDiaria", mock.Anything, mock.Anything)
}

func (suite *DiariaServiceTestSuite) TestCreateDiaria_UnknownFuncionario() {
	ctx := context.Background()
	req := dto.CreateDiariaRequest{
		Data:          "2026-08-15",
		Valor:         decimal.NewFromInt(250),
		FuncionarioID: 99,
		ClienteID:     5,
	}

	suite.mockFuncionarioRepo.On("FindFuncionarioByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateDiaria(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrInvalidReference)
	suite.Contains(err.Error(), "funcionarioId")
}

func (suite *DiariaServiceTestSuite) TestCreateDiaria_UnknownCliente() {
	ctx := context.Background()
	req := dto.CreateDiariaRequest{
		Data:          "2026-08-15",
		Valor:         decimal.NewFromInt(250),
		FuncionarioID: 3,
		ClienteID:     99,
	}

	suite.mockFuncionarioRepo.On("FindFuncionarioByID", ctx, int64(3)).
		Return(&domain.FuncionarioWithEmpresa{Funcionario: domain.Funcionario{ID: 3}}, nil).Once()
	suite.mockClienteRepo.On("FindClienteByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateDiaria(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrInvalidReference)
	suite.Contains(err.Error(), "clienteId")
}

func (suite *DiariaServiceTestSuite) TestUpdateDiaria_PendenteToAprovado() {
	ctx := context.Background()
	newStatus := string(domain.DiariaAprovado)
	req := dto.UpdateDiariaRequest{Status: &newStatus}

	suite.mockDiariaRepo.On("FindDiariaByID", ctx, int64(10)).
		Return(&domain.DiariaWithNames{
			Diaria: domain.Diaria{ID: 10, Status: domain.DiariaPendente, Valor: decimal.NewFromInt(250), FuncionarioID: 3, ClienteID: 5},
		}, nil).Once()
	suite.mockDiariaRepo.On("UpdateDiaria", ctx, mock.MatchedBy(func(d domain.Diaria) bool {
		return d.ID == 10 && d.Status == domain.DiariaAprovado
	})).Return(&domain.Diaria{ID: 10, Status: domain.DiariaAprovado}, nil).Once()

	updated, err := suite.service.UpdateDiaria(ctx, 10, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DiariaAprovado, updated.Status)
}

func (suite *DiariaServiceTestSuite) TestUpdateDiaria_AprovadoToPendenteRejected() {
	ctx := context.Background()
	newStatus := string(domain.DiariaPendente)
	req := dto.UpdateDiariaRequest{Status: &newStatus}

	suite.mockDiariaRepo.On("FindDiariaByID", ctx, int64(10)).
		Return(&domain.DiariaWithNames{
			Diaria: domain.Diaria{ID: 10, Status: domain.DiariaAprovado},
		}, nil).Once()

	updated, err := suite.service.UpdateDiaria(ctx, 10, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockDiariaRepo.AssertNotCalled(suite.T(), "UpdateDiaria", mock.Anything, mock.Anything)
}

func (suite *DiariaServiceTestSuite) TestUpdateDiaria_NonPositiveValor() {
	ctx := context.Background()
	badValor := decimal.NewFromInt(-5)
	req := dto.UpdateDiariaRequest{Valor: &badValor}

	suite.mockDiariaRepo.On("FindDiariaByID", ctx, int64(10)).
		Return(&domain.DiariaWithNames{
			Diaria: domain.Diaria{ID: 10, Status: domain.DiariaPendente, Valor: decimal.NewFromInt(250)},
		}, nil).Once()

	updated, err := suite.service.UpdateDiaria(ctx, 10, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DiariaServiceTestSuite) TestCancelDiaria_ForcesCanceladoFromAprovado() {
	ctx := context.Background()

	suite.mockDiariaRepo.On("FindDiariaByID", ctx, int64(10)).
		Return(&domain.DiariaWithNames{
			Diaria: domain.Diaria{ID: 10, Status: domain.DiariaAprovado},
		}, nil).Once()
	suite.mockDiariaRepo.On("UpdateDiaria", ctx, mock.MatchedBy(func(d domain.Diaria) bool {
		return d.ID == 10 && d.Status == domain.DiariaCancelado
	})).Return(&domain.Diaria{ID: 10, Status: domain.DiariaCancelado}, nil).Once()

	err := suite.service.CancelDiaria(ctx, 10)

	suite.Require().NoError(err)
	suite.mockDiariaRepo.AssertExpectations(suite.T())
}

func (suite *DiariaServiceTestSuite) TestCancelDiaria_AlreadyCanceladoIsIdempotent() {
	ctx := context.Background()

	suite.mockDiariaRepo.On("FindDiariaByID", ctx, int64(10)).
		Return(&domain.DiariaWithNames{
			Diaria: domain.Diaria{ID: 10, Status: domain.DiariaCancelado},
		}, nil).Once()

	err := suite.service.CancelDiaria(ctx, 10)

	suite.Require().NoError(err)
	suite.mockDiariaRepo.AssertNotCalled(suite.T(), "UpdateDiaria", mock.Anything, mock.Anything)
}

func TestDiariaService(t *testing.T) {
	suite.Run(t, new(DiariaServiceTestSuite))
}
