package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
	"github.com/gestorobras/gestor_diarias_app/internal/handlers"
	"github.com/gestorobras/gestor_diarias_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EmpresaService ---
type MockEmpresaService struct {
	mock.Mock
}

func (m *MockEmpresaService) CreateEmpresa(ctx context.Context, req dto.CreateEmpresaRequest) (*domain.Empresa, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Empresa), args.Error(1)
}
func (m *MockEmpresaService) ListEmpresas(ctx context.Context, status *domain.EmpresaStatus) ([]domain.Empresa, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Empresa), args.Error(1)
}
func (m *MockEmpresaService) GetEmpresaByID(ctx context.Context, id int64) (*domain.Empresa, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Empresa), args.Error(1)
}
func (m *MockEmpresaService) UpdateEmpresa(ctx context.Context, id int64, req dto.UpdateEmpresaRequest) (*domain.Empresa, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Empresa), args.Error(1)
}
func (m *MockEmpresaService) DeactivateEmpresa(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEmpresaService) RestoreEmpresa(ctx context.Context, id int64) (*domain.Empresa, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Empresa), args.Error(1)
}
func (m *MockEmpresaService) ForceDeleteEmpresa(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.EmpresaSvcFacade = (*MockEmpresaService)(nil)

// --- Test Suite ---
type EmpresaHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockEmpresaService
	jwtSecret   string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *EmpresaHandlerTestSuite) generateTestToken(userID int64) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "gestor-test",
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EmpresaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockEmpresaService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterEmpresaRoutes(v1, suite.mockService)
}

func (suite *EmpresaHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(1))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EmpresaHandlerTestSuite) TestCreateEmpresa_Success() {
	req := dto.CreateEmpresaRequest{Nome: "Construtora Alfa", CNPJ: "12.345.678/0001-90"}

	suite.mockService.On("CreateEmpresa", mock.Anything, req).
		Return(&domain.Empresa{ID: 1, Nome: req.Nome, CNPJ: req.CNPJ, Status: domain.EmpresaAtivo}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/empresas", req)

	suite.Equal(http.StatusCreated, w.Code)
	var body domain.Empresa
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(1), body.ID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *EmpresaHandlerTestSuite) TestCreateEmpresa_MissingNome() {
	w := suite.doRequest(http.MethodPost, "/api/v1/empresas", map[string]string{"cnpj": "12.345.678/0001-90"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateEmpresa", mock.Anything, mock.Anything)
}

func (suite *EmpresaHandlerTestSuite) TestCreateEmpresa_DuplicateCNPJ() {
	req := dto.CreateEmpresaRequest{Nome: "Construtora Beta", CNPJ: "12.345.678/0001-90"}

	suite.mockService.On("CreateEmpresa", mock.Anything, req).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/empresas", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "CNPJ")
}

func (suite *EmpresaHandlerTestSuite) TestGetEmpresa_NotFound() {
	suite.mockService.On("GetEmpresaByID", mock.Anything, int64(42)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/empresas/42", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EmpresaHandlerTestSuite) TestGetEmpresa_InvalidID() {
	w := suite.doRequest(http.MethodGet, "/api/v1/empresas/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetEmpresaByID", mock.Anything, mock.Anything)
}

func (suite *EmpresaHandlerTestSuite) TestListEmpresas_StatusFilter() {
	status := domain.EmpresaAtivo
	suite.mockService.On("ListEmpresas", mock.Anything, &status).
		Return([]domain.Empresa{{ID: 1, Status: domain.EmpresaAtivo}}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/empresas?status=Ativo", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []domain.Empresa
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 1)
}

func (suite *EmpresaHandlerTestSuite) TestForceDeleteEmpresa_DependencyConflict() {
	suite.mockService.On("ForceDeleteEmpresa", mock.Anything, int64(1)).
		Return(apperrors.ErrDependencyConflict).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/empresas/1/force", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "vinculados")
}

func (suite *EmpresaHandlerTestSuite) TestRestoreEmpresa_Success() {
	suite.mockService.On("RestoreEmpresa", mock.Anything, int64(1)).
		Return(&domain.Empresa{ID: 1, Status: domain.EmpresaAtivo}, nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/empresas/1/restore", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *EmpresaHandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/empresas", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListEmpresas", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestEmpresaHandler(t *testing.T) {
	suite.Run(t, new(EmpresaHandlerTestSuite))
}
