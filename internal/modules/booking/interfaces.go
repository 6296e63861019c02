package booking

import (
	"context"

	"cinebook/internal/domain"

	"github.com/shopspring/decimal"
)

// BookingRepository is the persistence contract for the lifecycle
// manager. CreateWithSeats and UpdateStatusCAS carry the transactional
// guarantees; everything else is plain reads.
type BookingRepository interface {
	CreateWithSeats(ctx context.Context, b *domain.Booking, seats []domain.BookedSeat) error
	HeldSeatIDs(ctx context.Context, screeningID int64) ([]int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatusCAS(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error)
	OverrideAmounts(ctx context.Context, id int64, ticketCount *int, totalAmount *decimal.Decimal) error
}

type ScreeningRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Screening, error)
}

type SeatRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Seat, error)
}

type VoucherRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Voucher, error)
	IsUserEligible(ctx context.Context, voucherID, userID int64) (bool, error)
}
