package repository

import (
	"cinebook/internal/domain"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date and installs the constraints
// AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Genre{},
		&domain.Movie{},
		&domain.Cinema{},
		&domain.Room{},
		&domain.Seat{},
		&domain.Screening{},
		&domain.Booking{},
		&domain.BookedSeat{},
		&domain.Voucher{},
		&domain.Review{},
		&domain.Snack{},
	); err != nil {
		return err
	}

	// At most one live allocation per (screening, seat). Allocations of
	// cancelled/refunded bookings keep their rows but drop out of the
	// index via the active flag.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_booked_seats_active ON booked_seats (screening_id, seat_id) WHERE active`,
	).Error
}
