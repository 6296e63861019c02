package repository

import (
	"context"

	"cinebook/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Omit("Movie", "User").Create(rv).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).Preload("User").First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID int64) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Omit("Movie", "User").Save(rv).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
