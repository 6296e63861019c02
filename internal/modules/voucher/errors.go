package voucher

import "errors"

var (
	ErrNotFound    = errors.New("voucher not found")
	ErrExpired     = errors.New("voucher has expired")
	ErrAlreadyHeld = errors.New("user already has this voucher")
	ErrValidation  = errors.New("validation error")
)
