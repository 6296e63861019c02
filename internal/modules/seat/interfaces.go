package seat

import (
	"context"

	"cinebook/internal/domain"
)

type SeatRepository interface {
	CreateBatch(ctx context.Context, seats []domain.Seat) ([]domain.Seat, error)
	GetByID(ctx context.Context, id int64) (*domain.Seat, error)
	ListByRoom(ctx context.Context, roomID int64) ([]domain.Seat, error)
	Update(ctx context.Context, s *domain.Seat) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type ScreeningRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Screening, error)
}

// BookingRepository gives the resolver the set of seats already held
// for a screening, and the history check that guards seat deletion.
type BookingRepository interface {
	HeldSeatIDs(ctx context.Context, screeningID int64) ([]int64, error)
	SeatHasHistory(ctx context.Context, seatID int64) (bool, error)
}
