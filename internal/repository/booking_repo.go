package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"cinebook/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateReference signals a reference_number collision. The
// caller regenerates and retries.
var ErrDuplicateReference = errors.New("reference number already taken")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64           `gorm:"column:id;primaryKey"`
	ReferenceNumber string          `gorm:"column:reference_number"`
	TicketCount     int             `gorm:"column:ticket_count"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount"`
	Status          string          `gorm:"column:status"`
	VoucherCode     string          `gorm:"column:voucher_code"`
	UserID          int64           `gorm:"column:user_id"`
	ScreeningID     int64           `gorm:"column:screening_id"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

type bookedSeatModel struct {
	ID          int64           `gorm:"column:id;primaryKey"`
	BookingID   int64           `gorm:"column:booking_id"`
	SeatID      int64           `gorm:"column:seat_id"`
	ScreeningID int64           `gorm:"column:screening_id"`
	Price       decimal.Decimal `gorm:"column:price"`
	Active      bool            `gorm:"column:active"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
}

func (bookedSeatModel) TableName() string { return "booked_seats" }

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		ReferenceNumber: b.ReferenceNumber,
		TicketCount:     b.TicketCount,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		VoucherCode:     b.VoucherCode,
		UserID:          b.UserID,
		ScreeningID:     b.ScreeningID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		ReferenceNumber: m.ReferenceNumber,
		TicketCount:     m.TicketCount,
		TotalAmount:     m.TotalAmount,
		Status:          domain.BookingStatus(m.Status),
		VoucherCode:     m.VoucherCode,
		UserID:          m.UserID,
		ScreeningID:     m.ScreeningID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// CreateWithSeats persists a booking and its seat allocations as one
// transaction. The held-seat check runs again inside the transaction
// with the candidate rows locked, so two concurrent requests for the
// same seats cannot both pass; the partial unique index on
// (screening_id, seat_id) backstops whatever the locks let through.
func (r *BookingRepository) CreateWithSeats(ctx context.Context, b *domain.Booking, seats []domain.BookedSeat) error {
	seatIDs := make([]int64, 0, len(seats))
	for _, s := range seats {
		seatIDs = append(seatIDs, s.SeatID)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var held []int64
		if err := tx.Model(&bookedSeatModel{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("screening_id = ? AND seat_id IN ? AND active", b.ScreeningID, seatIDs).
			Pluck("seat_id", &held).Error; err != nil {
			return err
		}
		if len(held) > 0 {
			return &domain.SeatConflictError{SeatIDs: held}
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		rows := make([]bookedSeatModel, 0, len(seats))
		for _, s := range seats {
			rows = append(rows, bookedSeatModel{
				BookingID:   m.ID,
				SeatID:      s.SeatID,
				ScreeningID: s.ScreeningID,
				Price:       s.Price,
				Active:      true,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		*b = *toDomainBooking(m)
		return nil
	})
	if err != nil {
		return r.translateUniqueViolation(ctx, err, b.ReferenceNumber, seatIDs)
	}
	return nil
}

// translateUniqueViolation maps constraint violations to domain errors:
// the reference_number index means a collision to retry, the partial
// seat index means the race lost to a concurrent booking. Postgres
// names the violated constraint; other drivers return the bare
// duplicated-key sentinel, so there the rolled-back write is attributed
// by checking whether another booking already holds the reference.
func (r *BookingRepository) translateUniqueViolation(ctx context.Context, err error, reference string, seatIDs []int64) error {
	var conflict *domain.SeatConflictError
	if errors.As(err, &conflict) {
		return conflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "reference") {
			return ErrDuplicateReference
		}
		return &domain.SeatConflictError{SeatIDs: seatIDs}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		var taken int64
		if qErr := r.db.WithContext(ctx).Model(&bookingModel{}).
			Where("reference_number = ?", reference).
			Count(&taken).Error; qErr == nil && taken > 0 {
			return ErrDuplicateReference
		}
		return &domain.SeatConflictError{SeatIDs: seatIDs}
	}

	return err
}

// HeldSeatIDs returns the seats currently held for a screening by
// bookings that are not cancelled or refunded.
func (r *BookingRepository) HeldSeatIDs(ctx context.Context, screeningID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&bookedSeatModel{}).
		Where("screening_id = ? AND active", screeningID).
		Pluck("seat_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *BookingRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Screening").
		Preload("Screening.Movie").
		Preload("Screening.Room").
		Preload("BookedSeats").
		Preload("BookedSeats.Seat")
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.preloaded(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByIDForUser scopes the lookup to the owner. A booking owned by
// somebody else comes back as ErrRecordNotFound, never as data.
func (r *BookingRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.preloaded(ctx).Where("bookings.id = ? AND bookings.user_id = ?", id, userID).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.preloaded(ctx).
		Where("bookings.user_id = ?", userID).
		Order("bookings.created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.preloaded(ctx).Preload("User").
		Order("bookings.created_at DESC").
		Find(&out).Error
	return out, err
}

// UpdateStatusCAS moves a booking from one status to another with a
// compare-and-swap, so two concurrent transitions cannot both succeed
// from the same stale read. Reaching a terminal status releases the
// seat allocations in the same transaction.
func (r *BookingRepository) UpdateStatusCAS(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error) {
	swapped := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&bookingModel{}).
			Where("id = ? AND status = ?", id, string(from)).
			Update("status", string(to))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		swapped = true

		if to.Terminal() {
			return tx.Model(&bookedSeatModel{}).
				Where("booking_id = ?", id).
				Update("active", false).Error
		}
		return nil
	})
	return swapped, err
}

// OverrideAmounts is the staff escape hatch for ticket_count and
// total_amount; moviegoer flows never touch these after creation.
func (r *BookingRepository) OverrideAmounts(ctx context.Context, id int64, ticketCount *int, totalAmount *decimal.Decimal) error {
	updates := map[string]any{}
	if ticketCount != nil {
		updates["ticket_count"] = *ticketCount
	}
	if totalAmount != nil {
		updates["total_amount"] = *totalAmount
	}
	if len(updates) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SeatHasHistory reports whether any allocation, live or not, ever
// referenced the seat. Seats with history must not be deleted.
func (r *BookingRepository) SeatHasHistory(ctx context.Context, seatID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&bookedSeatModel{}).
		Where("seat_id = ?", seatID).
		Count(&cnt).Error
	return cnt > 0, err
}
