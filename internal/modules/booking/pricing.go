package booking

import (
	"context"
	"errors"
	"time"

	"cinebook/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Quote is the pricing engine's output. PerSeat holds the price charged
// for each seat rounded to cents; a voucher discounts the aggregate
// only and is never redistributed back onto the seats, so the stored
// per-seat prices stay usable for per-seat refunds.
type Quote struct {
	Subtotal decimal.Decimal
	Total    decimal.Decimal
	PerSeat  map[int64]decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// quote prices a set of seats against a screening's base price and an
// optional voucher code. Per-seat price is basePrice * tier multiplier;
// the total is rounded half-up to 2 decimal places at the end.
func (s *Service) quote(ctx context.Context, basePrice decimal.Decimal, seats []domain.Seat, voucherCode string, userID int64) (*Quote, error) {
	q := &Quote{
		Subtotal: decimal.Zero,
		PerSeat:  make(map[int64]decimal.Decimal, len(seats)),
	}

	for _, seat := range seats {
		line := basePrice.Mul(seat.Type.Multiplier())
		q.PerSeat[seat.ID] = line.Round(2)
		q.Subtotal = q.Subtotal.Add(line)
	}

	total := q.Subtotal
	if voucherCode != "" {
		voucher, err := s.vouchers.GetByCode(ctx, voucherCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVoucherNotFound
			}
			return nil, err
		}
		if voucher.Expired(time.Now()) {
			return nil, ErrVoucherExpired
		}
		eligible, err := s.vouchers.IsUserEligible(ctx, voucher.ID, userID)
		if err != nil {
			return nil, err
		}
		if !eligible {
			return nil, ErrVoucherNotEligible
		}

		total = total.Mul(oneHundred.Sub(voucher.DiscountPercent)).Div(oneHundred)
	}

	q.Total = total.Round(2)
	return q, nil
}
