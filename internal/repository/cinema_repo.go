package repository

import (
	"context"

	"cinebook/internal/domain"

	"gorm.io/gorm"
)

type CinemaRepository struct {
	db *gorm.DB
}

func NewCinemaRepository(db *gorm.DB) *CinemaRepository {
	return &CinemaRepository{db: db}
}

func (r *CinemaRepository) Create(ctx context.Context, c *domain.Cinema) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CinemaRepository) GetByID(ctx context.Context, id int64) (*domain.Cinema, error) {
	var c domain.Cinema
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CinemaRepository) List(ctx context.Context) ([]domain.Cinema, error) {
	var out []domain.Cinema
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *CinemaRepository) Update(ctx context.Context, c *domain.Cinema) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CinemaRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Cinema{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
