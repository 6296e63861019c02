package voucher

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateVoucherRequest struct {
	DiscountPercent decimal.Decimal `json:"discount_percent" binding:"required"`
	ExpDate         time.Time       `json:"exp_date" binding:"required"`
}

type UpdateVoucherRequest struct {
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	ExpDate         *time.Time       `json:"exp_date"`
}

type RedeemVoucherRequest struct {
	Code string `json:"code" binding:"required,max=10"`
}
