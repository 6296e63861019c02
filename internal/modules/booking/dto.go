package booking

import "github.com/shopspring/decimal"

type CreateBookingRequest struct {
	ScreeningID int64   `json:"screening_id" binding:"required"`
	SeatIDs     []int64 `json:"seat_ids" binding:"required,min=1"`
	VoucherCode string  `json:"voucher_code"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// StaffUpdateRequest additionally allows the staff-only overrides of
// ticket_count and total_amount.
type StaffUpdateRequest struct {
	Status      string           `json:"status"`
	TicketCount *int             `json:"ticket_count"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
}
