package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingPaid      BookingStatus = "paid"
	BookingCancelled BookingStatus = "cancelled"
	BookingRefunded  BookingStatus = "refunded"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingPaid, BookingCancelled},
	BookingPaid:      {BookingRefunded},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingPaid, BookingCancelled, BookingRefunded:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingRefunded
}

// CanTransitionTo reports whether next is directly reachable from s.
// This is the owner-facing table; staff may skip intermediate states
// but never leave a terminal one.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              int64           `json:"id" gorm:"primaryKey"`
	ReferenceNumber string          `json:"reference_number" gorm:"uniqueIndex;size:20"`
	TicketCount     int             `json:"ticket_count"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2)"`
	Status          BookingStatus   `json:"status" gorm:"size:20;default:pending"`
	VoucherCode     string          `json:"voucher_code,omitempty" gorm:"size:10"`
	UserID          int64           `json:"user_id" gorm:"index"`
	User            *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ScreeningID     int64           `json:"screening_id" gorm:"index"`
	Screening       *Screening      `json:"screening,omitempty" gorm:"foreignKey:ScreeningID"`
	BookedSeats     []BookedSeat    `json:"booked_seats,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BookedSeat ties one seat to one booking for one screening, with the
// price actually charged for that seat.
type BookedSeat struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	BookingID   int64           `json:"booking_id" gorm:"index"`
	SeatID      int64           `json:"seat_id"`
	Seat        *Seat           `json:"seat,omitempty" gorm:"foreignKey:SeatID"`
	ScreeningID int64           `json:"screening_id"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	// Active mirrors the parent booking's liveness so the partial
	// unique index on (screening_id, seat_id) only covers seats that
	// are actually held. Flipped off when the booking reaches a
	// terminal status.
	Active    bool      `json:"-" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}

// SeatConflictError reports the seats that were already held for the
// target screening when a booking was attempted.
type SeatConflictError struct {
	SeatIDs []int64
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats already booked for this screening: %v", e.SeatIDs)
}
