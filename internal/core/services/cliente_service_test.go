package services_test

import (
	"context"
	"testing"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portsrepo "github.com/gestorobras/gestor_diarias_app/internal/core/ports/repositories"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/core/services"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClienteRepository ---
type MockClienteRepository struct {
	mock.Mock
}

func (m *MockClienteRepository) CreateCliente(ctx context.Context, cliente domain.Cliente) (*domain.Cliente, error) {
	args := m.Called(ctx, cliente)
	var created *domain.Cliente
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Cliente)
	}
	return created, args.Error(1)
}

func (m *MockClienteRepository) FindClienteByID(ctx context.Context, id int64) (*domain.ClienteWithEmpresa, error) {
	args := m.Called(ctx, id)
	var cliente *domain.ClienteWithEmpresa
	if args.Get(0) != nil {
		cliente = args.Get(0).(*domain.ClienteWithEmpresa)
	}
	return cliente, args.Error(1)
}

func (m *MockClienteRepository) FindClienteByCNPJ(ctx context.Context, cnpj string) (*domain.Cliente, error) {
	args := m.Called(ctx, cnpj)
	var cliente *domain.Cliente
	if args.Get(0) != nil {
		cliente = args.Get(0).(*domain.Cliente)
	}
	return cliente, args.Error(1)
}

func (m *MockClienteRepository) FindClientes(ctx context.Context, filter portsrepo.ClienteFilter) ([]domain.ClienteWithEmpresa, error) {
	args := m.Called(ctx, filter)
	var clientes []domain.ClienteWithEmpresa
	if args.Get(0) != nil {
		clientes = args.Get(0).([]domain.ClienteWithEmpresa)
	}
	return clientes, args.Error(1)
}

func (m *MockClienteRepository) UpdateCliente(ctx context.Context, cliente domain.Cliente) (*domain.Cliente, error) {
	args := m.Called(ctx, cliente)
	var updated *domain.Cliente
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Cliente)
	}
	return updated, args.Error(1)
}

// --- Test Suite ---
type ClienteServiceTestSuite struct {
	suite.Suite
	mockClienteRepo *MockClienteRepository
	mockEmpresaRepo *MockEmpresaRepository
	service         portssvc.ClienteSvcFacade
}

func (suite *ClienteServiceTestSuite) SetupTest() {
	suite.mockClienteRepo = new(MockClienteRepository)
	suite.mockEmpresaRepo = new(MockEmpresaRepository)
	suite.service = services.NewClienteService(suite.mockClienteRepo, suite.mockEmpresaRepo)
}

func (suite *ClienteServiceTestSuite) TestCreateCliente_Success() {
	ctx := context.Background()
	req := dto.CreateClienteRequest{Nome: "Obra Centro", EmpresaID: 1}

	suite.mockEmpresaRepo.On("FindEmpresaByID", ctx, int64(1)).
		Return(&domain.Empresa{ID: 1, Status: domain.EmpresaAtivo}, nil).Once()
	suite.mockClienteRepo.On("CreateCliente", ctx, mock.MatchedBy(func(c domain.Cliente) bool {
		return c.Nome == req.Nome && c.EmpresaID == int64(1) && c.Status == domain.ClienteAtivo
	})).Return(&domain.Cliente{ID: 5, Nome: req.Nome, EmpresaID: 1, Status: domain.ClienteAtivo}, nil).Once()

	created, err := suite.service.CreateCliente(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(5), created.ID)
	suite.mockClienteRepo.AssertExpectations(suite.T())
}

func (suite *ClienteServiceTestSuite) TestCreateCliente_UnknownEmpresa() {
	ctx := context.Background()
	req := dto.CreateClienteRequest{Nome: "Obra Centro", EmpresaID: 99}

	suite.mockEmpresaRepo.On("FindEmpresaByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateCliente(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrInvalidReference)
	suite.mockClienteRepo.AssertNotCalled(suite.T(), "CreateCliente", mock.Anything, mock.Anything)
}

func (suite *ClienteServiceTestSuite) TestCreateCliente_DuplicateCNPJ() {
	ctx := context.Background()
	req := dto.CreateClienteRequest{Nome: "Obra Norte", CNPJ: "11.111.111/0001-11", EmpresaID: 1}

	suite.mockEmpresaRepo.On("FindEmpresaByID", ctx, int64(1)).
		Return(&domain.Empresa{ID: 1}, nil).Once()
	suite.mockClienteRepo.On("FindClienteByCNPJ", ctx, req.CNPJ).
		Return(&domain.Cliente{ID: 2, CNPJ: req.CNPJ}, nil).Once()

	created, err := suite.service.CreateCliente(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ClienteServiceTestSuite) TestCreateCliente_EmptyCNPJSkipsDuplicateCheck() {
	ctx := context.Background()
	req := dto.CreateClienteRequest{Nome: "Obra Sul", EmpresaID: 1}

	suite.mockEmpresaRepo.On("FindEmpresaByID", ctx, int64(1)).
		Return(&domain.Empresa{ID: 1}, nil).Once()
	suite.mockClienteRepo.On("CreateCliente", ctx, mock.AnythingOfType("domain.Cliente")).
		Return(&domain.Cliente{ID: 6, Nome: req.Nome, EmpresaID: 1}, nil).Once()

	_, err := suite.service.CreateCliente(ctx, req)

	suite.Require().NoError(err)
	suite.mockClienteRepo.AssertNotCalled(suite.T(), "FindClienteByCNPJ", mock.Anything, mock.Anything)
}

func (suite *ClienteServiceTestSuite) TestUpdateCliente_ChangedEmpresaIsVerified() {
	ctx := context.Background()
	newEmpresaID := int64(2)
	req := dto.UpdateClienteRequest{EmpresaID: &newEmpresaID}

	suite.mockClienteRepo.On("FindClienteByID", ctx, int64(5)).
		Return(&domain.ClienteWithEmpresa{
			Cliente: domain.Cliente{ID: 5, Nome: "Obra Centro", EmpresaID: 1, Status: domain.ClienteAtivo},
		}, nil).Once()
	suite.mockEmpresaRepo.On("FindEmpresaByID", ctx, newEmpresaID).
		Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateCliente(ctx, 5, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInvalidReference)
}

func (suite *ClienteServiceTestSuite) TestDeactivateCliente_AlreadyInactiveIsIdempotent() {
	ctx := context.Background()

	suite.mockClienteRepo.On("FindClienteByID", ctx, int64(5)).
		Return(&domain.ClienteWithEmpresa{
			Cliente: domain.Cliente{ID: 5, Status: domain.ClienteInativo},
		}, nil).Once()

	err := suite.service.DeactivateCliente(ctx, 5)

	suite.Require().NoError(err)
	suite.mockClienteRepo.AssertNotCalled(suite.T(), "UpdateCliente", mock.Anything, mock.Anything)
}

func TestClienteService(t *testing.T) {
	suite.Run(t, new(ClienteServiceTestSuite))
}
