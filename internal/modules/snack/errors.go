package snack

import "errors"

var (
	ErrNotFound   = errors.New("snack not found")
	ErrValidation = errors.New("validation error")
)
