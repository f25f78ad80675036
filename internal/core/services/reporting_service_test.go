package services_test

import (
	"context"
	"testing"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SummarizeDiarias(ctx context.Context, filter domain.DiariaFilter) (*domain.RelatorioDiarias, error) {
	args := m.Called(ctx, filter)
	var relatorio *domain.RelatorioDiarias
	if args.Get(0) != nil {
		relatorio = args.Get(0).(*domain.RelatorioDiarias)
	}
	return relatorio, args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestRelatorioDiarias_Totals() {
	ctx := context.Background()
	clienteID := int64(5)
	filter := domain.DiariaFilter{ClienteID: &clienteID}

	suite.mockRepo.On("SummarizeDiarias", ctx, filter).
		Return(&domain.RelatorioDiarias{
			TotalValor:   decimal.RequireFromString("1250.50"),
			TotalDiarias: 5,
		}, nil).Once()

	relatorio, err := suite.service.RelatorioDiarias(ctx, filter)

	suite.Require().NoError(err)
	suite.True(relatorio.TotalValor.Equal(decimal.RequireFromString("1250.50")))
	suite.Equal(int64(5), relatorio.TotalDiarias)
}

func (suite *ReportingServiceTestSuite) TestRelatorioDiarias_EmptySetYieldsZeros() {
	ctx := context.Background()

	suite.mockRepo.On("SummarizeDiarias", ctx, domain.DiariaFilter{}).
		Return(&domain.RelatorioDiarias{}, nil).Once()

	relatorio, err := suite.service.RelatorioDiarias(ctx, domain.DiariaFilter{})

	suite.Require().NoError(err)
	suite.Require().NotNil(relatorio)
	suite.True(relatorio.TotalValor.IsZero())
	suite.Equal(int64(0), relatorio.TotalDiarias)
}

func (suite *ReportingServiceTestSuite) TestRelatorioDiarias_NilResultBecomesZeroStruct() {
	ctx := context.Background()

	suite.mockRepo.On("SummarizeDiarias", ctx, domain.DiariaFilter{}).
		Return(nil, nil).Once()

	relatorio, err := suite.service.RelatorioDiarias(ctx, domain.DiariaFilter{})

	suite.Require().NoError(err)
	suite.Require().NotNil(relatorio)
	suite.Equal(int64(0), relatorio.TotalDiarias)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
