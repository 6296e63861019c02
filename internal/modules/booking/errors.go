package booking

import "errors"

var (
	ErrNotFound             = errors.New("booking not found")
	ErrScreeningNotFound    = errors.New("screening not found")
	ErrScreeningUnavailable = errors.New("screening is not available for booking")
	ErrSeatNotFound         = errors.New("one or more seats do not exist")
	ErrValidation           = errors.New("validation error")
	ErrForbidden            = errors.New("operation not permitted for this role")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrAlreadyTerminal      = errors.New("booking is already cancelled or refunded")
	ErrVoucherNotFound      = errors.New("voucher not found")
	ErrVoucherExpired       = errors.New("voucher has expired")
	ErrVoucherNotEligible   = errors.New("voucher is not available to this user")
)
