package voucher

import (
	"context"
	"testing"
	"time"

	"cinebook/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) Create(ctx context.Context, v *domain.Voucher) error {
	args := m.Called(ctx, v)
	if v != nil && args.Error(0) == nil {
		v.ID = 9
	}
	return args.Error(0)
}

func (m *MockVoucherRepository) GetByID(ctx context.Context, id int64) (*domain.Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) List(ctx context.Context) ([]domain.Voucher, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Voucher, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) Update(ctx context.Context, v *domain.Voucher) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVoucherRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVoucherRepository) AttachUser(ctx context.Context, voucherID, userID int64) error {
	args := m.Called(ctx, voucherID, userID)
	return args.Error(0)
}

func (m *MockVoucherRepository) UserHasVoucher(ctx context.Context, voucherID, userID int64) (bool, error) {
	args := m.Called(ctx, voucherID, userID)
	return args.Bool(0), args.Error(1)
}

func TestService_Create_GeneratesUnusedCode(t *testing.T) {
	vouchers := new(MockVoucherRepository)
	service := NewService(vouchers)

	vouchers.On("GetByCode", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	vouchers.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.Voucher) bool {
		return len(v.Code) == 3
	})).Return(nil)

	v, err := service.Create(context.Background(), CreateVoucherRequest{
		DiscountPercent: decimal.NewFromInt(15),
		ExpDate:         time.Now().Add(30 * 24 * time.Hour),
	})

	assert.NoError(t, err)
	assert.Len(t, v.Code, 3)
	assert.Regexp(t, `^[A-Z0-9]{3}$`, v.Code)
}

func TestService_Create_RejectsDiscountOverHundred(t *testing.T) {
	service := NewService(new(MockVoucherRepository))

	_, err := service.Create(context.Background(), CreateVoucherRequest{
		DiscountPercent: decimal.NewFromInt(120),
		ExpDate:         time.Now().Add(time.Hour),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Redeem_Success(t *testing.T) {
	vouchers := new(MockVoucherRepository)
	service := NewService(vouchers)

	vouchers.On("GetByCode", mock.Anything, "AB1").Return(&domain.Voucher{
		ID:      9,
		Code:    "AB1",
		ExpDate: time.Now().Add(time.Hour),
	}, nil)
	vouchers.On("UserHasVoucher", mock.Anything, int64(9), int64(42)).Return(false, nil)
	vouchers.On("AttachUser", mock.Anything, int64(9), int64(42)).Return(nil)

	v, err := service.Redeem(context.Background(), 42, " ab1 ")

	assert.NoError(t, err)
	assert.Equal(t, "AB1", v.Code)
	vouchers.AssertExpectations(t)
}

func TestService_Redeem_Expired(t *testing.T) {
	vouchers := new(MockVoucherRepository)
	service := NewService(vouchers)

	vouchers.On("GetByCode", mock.Anything, "OLD").Return(&domain.Voucher{
		ID:      9,
		Code:    "OLD",
		ExpDate: time.Now().Add(-time.Hour),
	}, nil)

	_, err := service.Redeem(context.Background(), 42, "OLD")

	assert.ErrorIs(t, err, ErrExpired)
	vouchers.AssertNotCalled(t, "AttachUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Redeem_AlreadyHeld(t *testing.T) {
	vouchers := new(MockVoucherRepository)
	service := NewService(vouchers)

	vouchers.On("GetByCode", mock.Anything, "AB1").Return(&domain.Voucher{
		ID:      9,
		Code:    "AB1",
		ExpDate: time.Now().Add(time.Hour),
	}, nil)
	vouchers.On("UserHasVoucher", mock.Anything, int64(9), int64(42)).Return(true, nil)

	_, err := service.Redeem(context.Background(), 42, "AB1")

	assert.ErrorIs(t, err, ErrAlreadyHeld)
}

func TestService_Validate_UnknownCode(t *testing.T) {
	vouchers := new(MockVoucherRepository)
	service := NewService(vouchers)

	vouchers.On("GetByCode", mock.Anything, "ZZZ").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Validate(context.Background(), "zzz")

	assert.ErrorIs(t, err, ErrNotFound)
}
