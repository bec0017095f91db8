package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/retailbooks/retail_accounting_app/internal/apperrors"
	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
	portssvc "github.com/retailbooks/retail_accounting_app/internal/core/ports/services"
	"github.com/retailbooks/retail_accounting_app/internal/core/services"
	"github.com/retailbooks/retail_accounting_app/internal/utils"
)

// MockUserRepository is a mock type for the UserReader interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Username:     "cashier1",
		Name:         "Cashier One",
		PasswordHash: hash,
		IsActive:     true,
	}
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	user := suite.activeUser("correct horse")

	suite.mockRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Username, "correct horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	user := suite.activeUser("correct horse")

	suite.mockRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Username, "battery staple")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "ghost", "anything")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_InactiveUser() {
	ctx := context.Background()
	user := suite.activeUser("correct horse")
	user.IsActive = false

	suite.mockRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Username, "correct horse")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound, "inactive users look like missing users")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("connection refused")

	suite.mockRepo.On("FindUserByUsername", ctx, "cashier1").Return(nil, repoErr).Once()

	got, err := suite.service.AuthenticateUser(ctx, "cashier1", "correct horse")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, repoErr)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	user := suite.activeUser("pw")

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.GetUserByID(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.Equal(user.Username, got.Username)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
