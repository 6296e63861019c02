package voucher

import (
	"context"

	"cinebook/internal/domain"
)

type VoucherRepository interface {
	Create(ctx context.Context, v *domain.Voucher) error
	GetByID(ctx context.Context, id int64) (*domain.Voucher, error)
	GetByCode(ctx context.Context, code string) (*domain.Voucher, error)
	List(ctx context.Context) ([]domain.Voucher, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Voucher, error)
	Update(ctx context.Context, v *domain.Voucher) error
	Delete(ctx context.Context, id int64) error
	AttachUser(ctx context.Context, voucherID, userID int64) error
	UserHasVoucher(ctx context.Context, voucherID, userID int64) (bool, error)
}
