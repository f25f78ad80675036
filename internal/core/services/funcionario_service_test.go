package services_test

import (
	"context"
	"testing"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/core/services"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FuncionarioRepository ---
type MockFuncionarioRepository struct {
	mock.Mock
}

func (m *MockFuncionarioRepository) CreateFuncionario(ctx context.Context, funcionario domain.Funcionario) (*domain.Funcionario, error) {
	args := m.Called(ctx, funcionario)
	var created *domain.Funcionario
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Funcionario)
	}
	return created, args.Error(1)
}

func (m *MockFuncionarioRepository) FindFuncionarioByID(ctx context.Context, id int64) (*domain.FuncionarioWithEmpresa, error) {
	args := m.Called(ctx, id)
	var funcionario *domain.FuncionarioWithEmpresa
	if args.Get(0) != nil {
		funcionario = args.Get(0).(*domain.FuncionarioWithEmpresa)
	}
	return funcionario, args.Error(1)
}

func (m *MockFuncionarioRepository) FindFuncionarioByCPF(ctx context.Context, cpf string) (*domain.Funcionario, error) {
	args := m.Called(ctx, cpf)
	var funcionario *domain.Funcionario
	if args.Get(0) != nil {
		funcionario = args.Get(0).(*domain.Funcionario)
	}
	return funcionario, args.Error(1)
}

func (m *MockFuncionarioRepository) FindFuncionarioByEmail(ctx context.Context, email string) (*domain.Funcionario, error) {
	args := m.Called(ctx, email)
	var funcionario *domain.Funcionario
	if args.Get(0) != nil {
		funcionario = args.Get(0).(*domain.Funcionario)
	}
	return funcionario, args.Error(1)
}

func (m *MockFuncionarioRepository) FindFuncionarios(ctx context.Context, filter domain.FuncionarioFilter) ([]domain.FuncionarioWithEmpresa, error) {
	args := m.Called(ctx, filter)
	var funcionarios []domain.FuncionarioWithEmpresa
	if args.Get(0) != nil {
		funcionarios = args.Get(0).([]domain.FuncionarioWithEmpresa)
	}
	return funcionarios, args.Error(1)
}

func (m *MockFuncionarioRepository) UpdateFuncionario(ctx context.Context, funcionario domain.Funcionario) (*domain.Funcionario, error) {
	args := m.Called(ctx, funcionario)
	var updated *domain.Funcionario
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Funcionario)
	}
	return updated, args.Error(1)
}

// --- Test Suite ---
type FuncionarioServiceTestSuite struct {
	suite.Suite
	mockFuncionarioRepo *MockFuncionarioRepository
	mockEmpresaRepo     *MockEmpresaRepository
	service             portssvc.FuncionarioSvcFacade
}

func (suite *FuncionarioServiceTestSuite) SetupTest() {
	suite.mockFuncionarioRepo = new(MockFuncionarioRepository)
	suite.mockEmpresaRepo = new(MockEmpresaRepository)
	suite.service = services.NewFuncionarioService(suite.mockFuncionarioRepo, suite.mockEmpresaRepo)
}

func (suite *FuncionarioServiceTestSuite) TestCreateFuncionario_DefaultsToTreinamento() {
	ctx := context.Background()
	req := dto.CreateFuncionarioRequest{Nome: "João Silva", CPF: "123.456.789-00", EmpresaID: 1}

	suite.mockEmpresaRepo.On("FindEmpresaByID", ctx, int64(1)).
		Return(&domain.Empresa{ID: 1}, nil).Once()
	suite.mockFuncionarioRepo.On("FindFuncionarioByCPF", ctx, req.CPF).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFuncionarioRepo.On("CreateFuncionario", ctx, mock.MatchedBy(func(f domain.Funcionario) bool {
		return f.Tipo == domain.FuncionarioTreinamento && f.Status == domain.FuncionarioAtivo
	})).Return(&domain.Funcionario{ID: 3, Nome: req.Nome, CPF: req.CPF, Tipo: domain.FuncionarioTreinamento, Status: domain.FuncionarioAtivo, EmpresaID: 1}, nil).Once()

	created, err := suite.service.CreateFuncionario(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.FuncionarioTreinamento, created.Tipo)
	suite.mockFuncionarioRepo.AssertExpectations(suite.T())
}

func (suite *FuncionarioServiceTestSuite) TestCreateFuncionario_DuplicateCPF() {
	ctx := context.Background()
	req := dto.CreateFuncionarioRequest{Nome: "João Silva", CPF: "123.456.789-00", EmpresaID: 1}

	suite.mockEmpresaRepo.On("FindEmpresaByID", ctx, int64(1)).
		Return(&domain.Empresa{ID: 1}, nil).Once()
	suite.mockFuncionarioRepo.On("FindFuncionarioByCPF", ctx, req.CPF).
		Return(&domain.Funcionario{ID: 9, CPF: req.CPF}, nil).Once()

	created, err := suite.service.CreateFuncionario(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *FuncionarioServiceTestSuite) TestCreateFuncionario_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateFuncionarioRequest{Nome: "João Silva", CPF: "123.456.789-00", Email: "joao@obra.com", EmpresaID: 1}

	suite.mockEmpresaRepo.On("FindEmpresaByID", ctx, int64(1)).
		Return(&domain.Empresa{ID: 1}, nil).Once()
	suite.mockFuncionarioRepo.On("FindFuncionarioByCPF", ctx, req.CPF).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFuncionarioRepo.On("FindFuncionarioByEmail", ctx, req.Email).
		Return(&domain.Funcionario{ID: 9, Email: req.Email}, nil).Once()

	created, err := suite.service.CreateFuncionario(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "email")
}

func (suite *FuncionarioServiceTestSuite) TestConvertFuncionario_Success() {
	ctx := context.Background()

	suite.mockFuncionarioRepo.On("FindFuncionarioByID", ctx, int64(3)).
		Return(&domain.FuncionarioWithEmpresa{
			Funcionario: domain.Funcionario{ID: 3, Tipo: domain.FuncionarioTreinamento, Status: domain.FuncionarioAtivo},
		}, nil).Once()
	suite.mockFuncionarioRepo.On("UpdateFuncionario", ctx, mock.MatchedBy(func(f domain.Funcionario) bool {
		return f.ID == 3 && f.Tipo == domain.FuncionarioAutonomo
	})).Return(&domain.Funcionario{ID: 3, Tipo: domain.FuncionarioAutonomo, Status: domain.FuncionarioAtivo}, nil).Once()

	converted, err := suite.service.ConvertFuncionario(ctx, 3)

	suite.Require().NoError(err)
	suite.Equal(domain.FuncionarioAutonomo, converted.Tipo)
	suite.mockFuncionarioRepo.AssertExpectations(suite.T())
}

func (suite *FuncionarioServiceTestSuite) TestConvertFuncionario_AlreadyAutonomo() {
	ctx := context.Background()

	suite.mockFuncionarioRepo.On("FindFuncionarioByID", ctx, int64(3)).
		Return(&domain.FuncionarioWithEmpresa{
			Funcionario: domain.Funcionario{ID: 3, Tipo: domain.FuncionarioAutonomo},
		}, nil).Once()

	converted, err := suite.service.ConvertFuncionario(ctx, 3)

	suite.Require().Error(err)
	suite.Nil(converted)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockFuncionarioRepo.AssertNotCalled(suite.T(), "UpdateFuncionario", mock.Anything, mock.Anything)
}

func (suite *FuncionarioServiceTestSuite) TestConvertFuncionario_NotFound() {
	ctx := context.Background()

	suite.mockFuncionarioRepo.On("FindFuncionarioByID", ctx, int64(77)).
		Return(nil, apperrors.ErrNotFound).Once()

	converted, err := suite.service.ConvertFuncionario(ctx, 77)

	suite.Require().Error(err)
	suite.Nil(converted)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FuncionarioServiceTestSuite) TestUpdateFuncionario_UnchangedCPFSkipsUniquenessCheck() {
	ctx := context.Background()
	sameCPF := "123.456.789-00"
	req := dto.UpdateFuncionarioRequest{CPF: &sameCPF}

	suite.mockFuncionarioRepo.On("FindFuncionarioByID", ctx, int64(3)).
		Return(&domain.FuncionarioWithEmpresa{
			Funcionario: domain.Funcionario{ID: 3, CPF: sameCPF, EmpresaID: 1, Status: domain.FuncionarioAtivo},
		}, nil).Once()
	suite.mockFuncionarioRepo.On("UpdateFuncionario", ctx, mock.AnythingOfType("domain.Funcionario")).
		Return(&domain.Funcionario{ID: 3, CPF: sameCPF}, nil).Once()

	_, err := suite.service.UpdateFuncionario(ctx, 3, req)

	suite.Require().NoError(err)
	suite.mockFuncionarioRepo.AssertNotCalled(suite.T(), "FindFuncionarioByCPF", mock.Anything, mock.Anything)
}

func TestFuncionarioService(t *testing.T) {
	suite.Run(t, new(FuncionarioServiceTestSuite))
}
