package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/plandesk/biz_planning_app/internal/apperrors"
	"github.com/plandesk/biz_planning_app/internal/core/domain"
	portssvc "github.com/plandesk/biz_planning_app/internal/core/ports/services"
	"github.com/plandesk/biz_planning_app/internal/core/services"
	"github.com/plandesk/biz_planning_app/internal/dto"
	"github.com/plandesk/biz_planning_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository (based on userService usage) ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "advisor1",
		Name:     "Test Advisor",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "advisor1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "advisor1" && user.Name == "Test Advisor" && user.PasswordHash != "password123"
	})).Return(nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdUser)
	suite.Equal("advisor1", createdUser.Username)
	suite.NotEmpty(createdUser.UserID)
	suite.True(utils.CheckPasswordHash("password123", createdUser.PasswordHash))

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Username: "advisor1"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "advisor1").Return(existing, nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "advisor1",
		Name:     "Someone Else",
		Password: "password123",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(createdUser)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	user := &domain.User{UserID: "u1", Username: "advisor1", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "advisor1").Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "advisor1", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal("u1", authed.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	user := &domain.User{UserID: "u1", Username: "advisor1", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "advisor1").Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "advisor1", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(authed)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	// Same error as a wrong password so usernames can't be probed.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(authed)
}

// --- UpdateUser / DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_ForbiddenForOtherUser() {
	ctx := context.Background()
	newName := "New Name"

	updated, err := suite.service.UpdateUser(ctx, "u1", dto.UpdateUserRequest{Name: &newName}, "u2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(updated)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	ctx := context.Background()
	newName := "New Name"
	user := &domain.User{UserID: "u1", Username: "advisor1", Name: "Old Name"}

	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == "New Name" && u.LastUpdatedBy == "u1"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, "u1", dto.UpdateUserRequest{Name: &newName}, "u1")

	suite.Require().NoError(err)
	suite.Equal("New Name", updated.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	suite.mockUserRepo.On("MarkUserDeleted", ctx, "u1", mock.AnythingOfType("time.Time"), "u1").Return(nil).Once()

	err := suite.service.DeleteUser(ctx, "u1", "u1")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUsers", ctx, 20, 0).Return(nil, nil).Once()

	users, err := suite.service.ListUsers(ctx, 20, 0)

	suite.Require().NoError(err)
	assert.NotNil(suite.T(), users)
	suite.Empty(users)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
