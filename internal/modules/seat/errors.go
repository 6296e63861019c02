package seat

import "errors"

var (
	ErrNotFound          = errors.New("seat not found")
	ErrRoomNotFound      = errors.New("room not found")
	ErrScreeningNotFound = errors.New("screening not found")
	ErrValidation        = errors.New("validation error")
	ErrSeatInUse         = errors.New("seat has bookings and cannot be removed")
)
