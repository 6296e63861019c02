package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Voucher struct {
	ID              int64           `json:"id" gorm:"primaryKey"`
	Code            string          `json:"code" gorm:"uniqueIndex;size:10"`
	DiscountPercent decimal.Decimal `json:"discount_percent" gorm:"type:decimal(5,2)" validate:"required"`
	ExpDate         time.Time       `json:"exp_date"`
	// Users the voucher is restricted to. Empty means available to all.
	Users     []User    `json:"users,omitempty" gorm:"many2many:user_vouchers"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Voucher) Expired(now time.Time) bool {
	return v.ExpDate.Before(now)
}
