package catalog

import "errors"

var (
	ErrMovieNotFound  = errors.New("movie not found")
	ErrGenreNotFound  = errors.New("one or more genres do not exist")
	ErrCinemaNotFound = errors.New("cinema not found")
	ErrRoomNotFound   = errors.New("room not found")
	ErrValidation     = errors.New("validation error")
	ErrRoomInUse      = errors.New("room has scheduled screenings and cannot be removed")
)
