package screening

import "errors"

var (
	ErrNotFound      = errors.New("screening not found")
	ErrMovieNotFound = errors.New("movie not found")
	ErrRoomNotFound  = errors.New("room not found")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("screening conflicts with the room schedule")
)
