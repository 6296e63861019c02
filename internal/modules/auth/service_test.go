package auth

import (
	"context"
	"testing"

	"cinebook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	service := NewService(users, jwt)

	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", int64(42), "moviegoer").Return("signed-token", nil)

	user, token, err := service.Register(context.Background(), RegisterRequest{
		Email:    "  NEW@example.com ",
		Password: "hunter2hunter2",
		Name:     "New User",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, domain.RoleMoviegoer, user.Role)
	assert.Empty(t, user.PasswordHash)

	created := users.Calls[1].Arguments.Get(1).(*domain.User)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	users.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

	_, _, err := service.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "hunter2hunter2",
		Name:     "Someone",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	service := NewService(users, jwt)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "m@example.com").Return(&domain.User{
		ID:           7,
		Email:        "m@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleMoviegoer,
	}, nil)
	jwt.On("GenerateToken", int64(7), "moviegoer").Return("signed-token", nil)

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "m@example.com",
		Password: "correct-horse",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", result.AccessToken)
	assert.Empty(t, result.User.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "m@example.com").Return(&domain.User{
		ID:           7,
		PasswordHash: string(hash),
	}, nil)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "m@example.com",
		Password: "battery-staple",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmailSameError(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
