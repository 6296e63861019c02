package screening

import (
	"context"
	"testing"
	"time"

	"cinebook/internal/domain"
	"cinebook/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockScreeningRepository struct {
	mock.Mock
}

func (m *MockScreeningRepository) GetByID(ctx context.Context, id int64) (*domain.Screening, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screening), args.Error(1)
}

func (m *MockScreeningRepository) List(ctx context.Context, f repository.ScreeningFilter) ([]domain.Screening, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screening), args.Error(1)
}

func (m *MockScreeningRepository) CreateConflictFree(ctx context.Context, s *domain.Screening, durationMinutes int) error {
	args := m.Called(ctx, s, durationMinutes)
	if s != nil && args.Error(0) == nil {
		s.ID = 55
	}
	return args.Error(0)
}

func (m *MockScreeningRepository) UpdateConflictFree(ctx context.Context, s *domain.Screening, durationMinutes int) error {
	args := m.Called(ctx, s, durationMinutes)
	return args.Error(0)
}

func (m *MockScreeningRepository) Save(ctx context.Context, s *domain.Screening) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScreeningRepository) Delete(ctx context.Context, id int64) error {
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

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func newTestService() (*Service, *MockScreeningRepository, *MockMovieRepository, *MockRoomRepository) {
	screenings := new(MockScreeningRepository)
	movies := new(MockMovieRepository)
	rooms := new(MockRoomRepository)
	return NewService(screenings, movies, rooms), screenings, movies, rooms
}

func TestService_Create_Success(t *testing.T) {
	service, screenings, movies, rooms := newTestService()

	start := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	movies.On("GetByID", mock.Anything, int64(1)).Return(&domain.Movie{ID: 1, DurationMinutes: 120}, nil)
	rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3}, nil)
	screenings.On("CreateConflictFree", mock.Anything, mock.Anything, 120).Return(nil)
	screenings.On("GetByID", mock.Anything, int64(55)).Return(&domain.Screening{
		ID: 55, StartTime: start, MovieID: 1, RoomID: 3, IsAvailable: true,
	}, nil)

	sc, err := service.Create(context.Background(), CreateScreeningRequest{
		MovieID:   1,
		RoomID:    3,
		StartTime: start,
		Format:    "IMAX",
		Price:     decimal.RequireFromString("12.99"),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), sc.ID)
	assert.True(t, sc.IsAvailable)
}

func TestService_Create_UnknownMovie(t *testing.T) {
	service, _, movies, _ := newTestService()
	movies.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Create(context.Background(), CreateScreeningRequest{
		MovieID:   1,
		RoomID:    3,
		StartTime: time.Now(),
		Format:    "2D",
		Price:     decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestService_Create_NegativePrice(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.Create(context.Background(), CreateScreeningRequest{
		MovieID:   1,
		RoomID:    3,
		StartTime: time.Now(),
		Format:    "2D",
		Price:     decimal.NewFromInt(-1),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_ScheduleConflict(t *testing.T) {
	service, screenings, movies, rooms := newTestService()
	movies.On("GetByID", mock.Anything, int64(1)).Return(&domain.Movie{ID: 1, DurationMinutes: 120}, nil)
	rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3}, nil)
	screenings.On("CreateConflictFree", mock.Anything, mock.Anything, 120).
		Return(domain.ErrSchedulingConflict)

	_, err := service.Create(context.Background(), CreateScreeningRequest{
		MovieID:   1,
		RoomID:    3,
		StartTime: time.Date(2026, 10, 1, 11, 30, 0, 0, time.UTC),
		Format:    "2D",
		Price:     decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Update_PriceChangeSkipsConflictCheck(t *testing.T) {
	service, screenings, _, _ := newTestService()
	stored := &domain.Screening{
		ID:        55,
		StartTime: time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
		MovieID:   1,
		RoomID:    3,
		Price:     decimal.NewFromInt(10),
	}
	screenings.On("GetByID", mock.Anything, int64(55)).Return(stored, nil)
	screenings.On("Save", mock.Anything, mock.Anything).Return(nil)

	price := decimal.RequireFromString("14.50")
	sc, err := service.Update(context.Background(), 55, UpdateScreeningRequest{Price: &price})

	assert.NoError(t, err)
	assert.Equal(t, "14.50", sc.Price.StringFixed(2))
	screenings.AssertNotCalled(t, "UpdateConflictFree", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_NewStartTimeRechecksSchedule(t *testing.T) {
	service, screenings, movies, _ := newTestService()
	stored := &domain.Screening{
		ID:        55,
		StartTime: time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
		MovieID:   1,
		RoomID:    3,
	}
	screenings.On("GetByID", mock.Anything, int64(55)).Return(stored, nil)
	movies.On("GetByID", mock.Anything, int64(1)).Return(&domain.Movie{ID: 1, DurationMinutes: 90}, nil)
	screenings.On("UpdateConflictFree", mock.Anything, mock.Anything, 90).
		Return(domain.ErrSchedulingConflict)

	newStart := time.Date(2026, 10, 1, 11, 0, 0, 0, time.UTC)
	_, err := service.Update(context.Background(), 55, UpdateScreeningRequest{StartTime: &newStart})

	assert.ErrorIs(t, err, ErrConflict)
	screenings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Update_MovingToMissingRoom(t *testing.T) {
	service, screenings, _, rooms := newTestService()
	screenings.On("GetByID", mock.Anything, int64(55)).Return(&domain.Screening{
		ID: 55, MovieID: 1, RoomID: 3,
	}, nil)
	rooms.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	roomID := int64(9)
	_, err := service.Update(context.Background(), 55, UpdateScreeningRequest{RoomID: &roomID})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_List_ParsesDateFilter(t *testing.T) {
	service, screenings, _, _ := newTestService()
	screenings.On("List", mock.Anything, mock.MatchedBy(func(f repository.ScreeningFilter) bool {
		return f.MovieID == 1 && f.Date != nil && f.Date.Format("2006-01-02") == "2026-10-01"
	})).Return([]domain.Screening{}, nil)

	_, err := service.List(context.Background(), ListScreeningsQuery{MovieID: 1, Date: "2026-10-01"})

	assert.NoError(t, err)
	screenings.AssertExpectations(t)
}

func TestService_List_RejectsMalformedDate(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.List(context.Background(), ListScreeningsQuery{Date: "October 1st"})

	assert.ErrorIs(t, err, ErrValidation)
}
