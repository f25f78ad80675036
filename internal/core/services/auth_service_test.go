package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/core/services"
	"github.com/gestorobras/gestor_diarias_app/internal/utils"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.AuthSvcFacade
	passwordHash string
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	hash, err := utils.HashPassword("segredo123")
	suite.Require().NoError(err)
	suite.passwordHash = hash
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	userService := services.NewUserService(suite.mockUserRepo)
	suite.service = services.NewAuthService(services.AuthConfig{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "gestor-diarias-app-test",
	}, userService)
}

func (suite *AuthServiceTestSuite) activeUser() *domain.User {
	return &domain.User{
		ID:           1,
		Nome:         "Maria Souza",
		Email:        "maria@gestao.com",
		PasswordHash: suite.passwordHash,
		Papel:        domain.PapelOperador,
		Status:       domain.UserAtivo,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "maria@gestao.com").
		Return(suite.activeUser(), nil).Once()

	user, token, err := suite.service.Login(ctx, "maria@gestao.com", "segredo123")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(token)
	suite.Equal(int64(1), user.ID)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ninguem@gestao.com").
		Return(nil, apperrors.ErrNotFound).Once()

	user, token, err := suite.service.Login(ctx, "ninguem@gestao.com", "segredo123")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "maria@gestao.com").
		Return(suite.activeUser(), nil).Once()

	user, token, err := suite.service.Login(ctx, "maria@gestao.com", "errada")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveUser() {
	ctx := context.Background()

	inactive := suite.activeUser()
	inactive.Status = domain.UserInativo
	suite.mockUserRepo.On("FindUserByEmail", ctx, "maria@gestao.com").
		Return(inactive, nil).Once()

	user, token, err := suite.service.Login(ctx, "maria@gestao.com", "segredo123")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(token)
	// Same error as unknown email, so callers cannot probe for accounts.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
