package review

import (
	"context"
	"testing"

	"cinebook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByMovie(ctx context.Context, movieID int64) ([]domain.Review, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func TestService_Create_UnknownMovie(t *testing.T) {
	reviews := new(MockReviewRepository)
	movies := new(MockMovieRepository)
	service := NewService(reviews, movies)

	movies.On("GetByID", mock.Anything, int64(11)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Create(context.Background(), 42, CreateReviewRequest{MovieID: 11, Rating: 4})

	assert.ErrorIs(t, err, ErrMovieNotFound)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_OnlyAuthor(t *testing.T) {
	reviews := new(MockReviewRepository)
	service := NewService(reviews, new(MockMovieRepository))

	reviews.On("GetByID", mock.Anything, int64(5)).Return(&domain.Review{ID: 5, UserID: 42}, nil)

	rating := 2
	_, err := service.Update(context.Background(), 77, 5, UpdateReviewRequest{Rating: &rating})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Delete_StaffMayRemoveAny(t *testing.T) {
	reviews := new(MockReviewRepository)
	service := NewService(reviews, new(MockMovieRepository))

	reviews.On("GetByID", mock.Anything, int64(5)).Return(&domain.Review{ID: 5, UserID: 42}, nil)
	reviews.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := service.Delete(context.Background(), 100, domain.RoleStaff, 5)

	assert.NoError(t, err)
	reviews.AssertExpectations(t)
}

func TestService_Delete_StrangerForbidden(t *testing.T) {
	reviews := new(MockReviewRepository)
	service := NewService(reviews, new(MockMovieRepository))

	reviews.On("GetByID", mock.Anything, int64(5)).Return(&domain.Review{ID: 5, UserID: 42}, nil)

	err := service.Delete(context.Background(), 77, domain.RoleMoviegoer, 5)

	assert.ErrorIs(t, err, ErrForbidden)
	reviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
