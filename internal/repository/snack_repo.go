package repository

import (
	"context"

	"cinebook/internal/domain"

	"gorm.io/gorm"
)

type SnackRepository struct {
	db *gorm.DB
}

func NewSnackRepository(db *gorm.DB) *SnackRepository {
	return &SnackRepository{db: db}
}

func (r *SnackRepository) Create(ctx context.Context, s *domain.Snack) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SnackRepository) GetByID(ctx context.Context, id int64) (*domain.Snack, error) {
	var s domain.Snack
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SnackRepository) List(ctx context.Context) ([]domain.Snack, error) {
	var out []domain.Snack
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *SnackRepository) Update(ctx context.Context, s *domain.Snack) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SnackRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Snack{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
