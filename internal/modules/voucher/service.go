package voucher

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"cinebook/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 3

var decimalHundred = decimal.NewFromInt(100)

type Service struct {
	vouchers VoucherRepository
}

func NewService(vouchers VoucherRepository) *Service {
	return &Service{vouchers: vouchers}
}

func randomCode() string {
	var b strings.Builder
	for i := 0; i < codeLength; i++ {
		b.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return b.String()
}

// uniqueCode regenerates until the code is unused. The space is small
// on purpose, codes are short enough to read out at a counter.
func (s *Service) uniqueCode(ctx context.Context) (string, error) {
	for {
		code := randomCode()
		_, err := s.vouchers.GetByCode(ctx, code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func (s *Service) Create(ctx context.Context, req CreateVoucherRequest) (*domain.Voucher, error) {
	if req.DiscountPercent.IsNegative() || req.DiscountPercent.GreaterThan(decimalHundred) {
		return nil, ErrValidation
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	v := &domain.Voucher{
		Code:            code,
		DiscountPercent: req.DiscountPercent,
		ExpDate:         req.ExpDate,
	}
	if err := s.vouchers.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Voucher, error) {
	v, err := s.vouchers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Voucher, error) {
	return s.vouchers.List(ctx)
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Voucher, error) {
	return s.vouchers.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateVoucherRequest) (*domain.Voucher, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DiscountPercent != nil {
		if req.DiscountPercent.IsNegative() || req.DiscountPercent.GreaterThan(decimalHundred) {
			return nil, ErrValidation
		}
		v.DiscountPercent = *req.DiscountPercent
	}
	if req.ExpDate != nil {
		v.ExpDate = *req.ExpDate
	}

	if err := s.vouchers.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.vouchers.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Redeem claims a voucher code for a user, making the voucher
// user-restricted from then on.
func (s *Service) Redeem(ctx context.Context, userID int64, code string) (*domain.Voucher, error) {
	v, err := s.vouchers.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if v.Expired(time.Now()) {
		return nil, ErrExpired
	}

	held, err := s.vouchers.UserHasVoucher(ctx, v.ID, userID)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, ErrAlreadyHeld
	}

	if err := s.vouchers.AttachUser(ctx, v.ID, userID); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate checks a code without redeeming it, so a client can verify
// a voucher before checkout.
func (s *Service) Validate(ctx context.Context, code string) (*domain.Voucher, error) {
	v, err := s.vouchers.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if v.Expired(time.Now()) {
		return nil, ErrExpired
	}
	return v, nil
}
