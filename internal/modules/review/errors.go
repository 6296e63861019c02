package review

import "errors"

var (
	ErrNotFound      = errors.New("review not found")
	ErrMovieNotFound = errors.New("movie not found")
	ErrForbidden     = errors.New("review belongs to another user")
	ErrValidation    = errors.New("validation error")
)
