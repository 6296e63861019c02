package repository

import (
	"context"

	"cinebook/internal/domain"

	"gorm.io/gorm"
)

type VoucherRepository struct {
	db *gorm.DB
}

func NewVoucherRepository(db *gorm.DB) *VoucherRepository {
	return &VoucherRepository{db: db}
}

type userVoucher struct {
	UserID    int64 `gorm:"column:user_id;primaryKey"`
	VoucherID int64 `gorm:"column:voucher_id;primaryKey"`
}

func (userVoucher) TableName() string { return "user_vouchers" }

func (r *VoucherRepository) Create(ctx context.Context, v *domain.Voucher) error {
	return r.db.WithContext(ctx).Omit("Users").Create(v).Error
}

func (r *VoucherRepository) GetByID(ctx context.Context, id int64) (*domain.Voucher, error) {
	var v domain.Voucher
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VoucherRepository) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	var v domain.Voucher
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VoucherRepository) List(ctx context.Context) ([]domain.Voucher, error) {
	var out []domain.Voucher
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *VoucherRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Voucher, error) {
	var out []domain.Voucher
	err := r.db.WithContext(ctx).
		Joins("JOIN user_vouchers ON user_vouchers.voucher_id = vouchers.id").
		Where("user_vouchers.user_id = ?", userID).
		Find(&out).Error
	return out, err
}

func (r *VoucherRepository) Update(ctx context.Context, v *domain.Voucher) error {
	return r.db.WithContext(ctx).Omit("Users").Save(v).Error
}

func (r *VoucherRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Voucher{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VoucherRepository) AttachUser(ctx context.Context, voucherID, userID int64) error {
	return r.db.WithContext(ctx).Create(&userVoucher{UserID: userID, VoucherID: voucherID}).Error
}

func (r *VoucherRepository) UserHasVoucher(ctx context.Context, voucherID, userID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&userVoucher{}).
		Where("voucher_id = ? AND user_id = ?", voucherID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

// IsUserEligible implements the voucher restriction rule: a voucher
// with no attached users is open to everyone, otherwise the user must
// be in the attached set.
func (r *VoucherRepository) IsUserEligible(ctx context.Context, voucherID, userID int64) (bool, error) {
	var restricted int64
	err := r.db.WithContext(ctx).Model(&userVoucher{}).
		Where("voucher_id = ?", voucherID).
		Count(&restricted).Error
	if err != nil {
		return false, err
	}
	if restricted == 0 {
		return true, nil
	}
	return r.UserHasVoucher(ctx, voucherID, userID)
}
