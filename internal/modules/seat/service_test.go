package seat

import (
	"context"
	"testing"

	"cinebook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockSeatRepository struct {
	mock.Mock
}

func (m *MockSeatRepository) CreateBatch(ctx context.Context, seats []domain.Seat) ([]domain.Seat, error) {
	args := m.Called(ctx, seats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockSeatRepository) GetByID(ctx context.Context, id int64) (*domain.Seat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seat), args.Error(1)
}

func (m *MockSeatRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.Seat, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockSeatRepository) Update(ctx context.Context, s *domain.Seat) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSeatRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) HeldSeatIDs(ctx context.Context, screeningID int64) ([]int64, error) {
	args := m.Called(ctx, screeningID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockBookingRepository) SeatHasHistory(ctx context.Context, seatID int64) (bool, error) {
	args := m.Called(ctx, seatID)
	return args.Bool(0), args.Error(1)
}

func newTestService() (*Service, *MockSeatRepository, *MockRoomRepository, *MockScreeningRepository, *MockBookingRepository) {
	seats := new(MockSeatRepository)
	rooms := new(MockRoomRepository)
	screenings := new(MockScreeningRepository)
	bookings := new(MockBookingRepository)
	return NewService(seats, rooms, screenings, bookings), seats, rooms, screenings, bookings
}

func TestService_CreateBatch_DefaultsToStandard(t *testing.T) {
	service, seats, rooms, _, _ := newTestService()
	rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3}, nil)
	seats.On("CreateBatch", mock.Anything, mock.MatchedBy(func(batch []domain.Seat) bool {
		return len(batch) == 2 &&
			batch[0].Type == domain.SeatStandard &&
			batch[1].Type == domain.SeatVIP
	})).Return([]domain.Seat{{ID: 1}, {ID: 2}}, nil)

	created, err := service.CreateBatch(context.Background(), CreateSeatsRequest{
		RoomID: 3,
		Seats: []SeatInput{
			{Row: "A", Number: 1},
			{Row: "A", Number: 2, Type: "vip"},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestService_CreateBatch_UnknownSeatType(t *testing.T) {
	service, seats, rooms, _, _ := newTestService()
	rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3}, nil)

	_, err := service.CreateBatch(context.Background(), CreateSeatsRequest{
		RoomID: 3,
		Seats:  []SeatInput{{Row: "A", Number: 1, Type: "throne"}},
	})

	assert.ErrorIs(t, err, ErrValidation)
	seats.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestService_Availability_FlagsHeldSeats(t *testing.T) {
	service, seats, _, screenings, bookings := newTestService()
	screenings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Screening{ID: 7, RoomID: 3}, nil)
	seats.On("ListByRoom", mock.Anything, int64(3)).Return([]domain.Seat{
		{ID: 1, Row: "A", Number: 1},
		{ID: 2, Row: "A", Number: 2},
		{ID: 3, Row: "A", Number: 3},
	}, nil)
	bookings.On("HeldSeatIDs", mock.Anything, int64(7)).Return([]int64{2}, nil)

	statuses, err := service.Availability(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, statuses, 3)
	assert.True(t, statuses[0].IsAvailable)
	assert.False(t, statuses[1].IsAvailable)
	assert.True(t, statuses[2].IsAvailable)
}

func TestService_AvailableSeats_ReturnsOnlyFreeOnes(t *testing.T) {
	service, seats, _, screenings, bookings := newTestService()
	screenings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Screening{ID: 7, RoomID: 3}, nil)
	seats.On("ListByRoom", mock.Anything, int64(3)).Return([]domain.Seat{
		{ID: 1, Row: "A", Number: 1},
		{ID: 2, Row: "A", Number: 2},
		{ID: 3, Row: "A", Number: 3},
	}, nil)
	bookings.On("HeldSeatIDs", mock.Anything, int64(7)).Return([]int64{1, 3}, nil)

	free, err := service.AvailableSeats(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, free, 1)
	assert.Equal(t, int64(2), free[0].ID)
}

func TestService_Availability_ScreeningMissing(t *testing.T) {
	service, _, _, screenings, _ := newTestService()
	screenings.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Availability(context.Background(), 7)

	assert.ErrorIs(t, err, ErrScreeningNotFound)
}

func TestService_Delete_RefusedWhileReferenced(t *testing.T) {
	service, seats, _, _, bookings := newTestService()
	seats.On("GetByID", mock.Anything, int64(4)).Return(&domain.Seat{ID: 4}, nil)
	bookings.On("SeatHasHistory", mock.Anything, int64(4)).Return(true, nil)

	err := service.Delete(context.Background(), 4)

	assert.ErrorIs(t, err, ErrSeatInUse)
	seats.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_UnusedSeat(t *testing.T) {
	service, seats, _, _, bookings := newTestService()
	seats.On("GetByID", mock.Anything, int64(4)).Return(&domain.Seat{ID: 4}, nil)
	bookings.On("SeatHasHistory", mock.Anything, int64(4)).Return(false, nil)
	seats.On("Delete", mock.Anything, int64(4)).Return(nil)

	err := service.Delete(context.Background(), 4)

	assert.NoError(t, err)
	seats.AssertExpectations(t)
}
