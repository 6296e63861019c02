package repository

import (
	"context"

	"cinebook/internal/domain"

	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) Create(ctx context.Context, m *domain.Movie) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	var m domain.Movie
	if err := r.db.WithContext(ctx).Preload("Genres").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	var out []domain.Movie
	err := r.db.WithContext(ctx).Preload("Genres").Order("title ASC").Find(&out).Error
	return out, err
}

func (r *MovieRepository) Update(ctx context.Context, m *domain.Movie) error {
	return r.db.WithContext(ctx).Omit("Genres").Save(m).Error
}

func (r *MovieRepository) ReplaceGenres(ctx context.Context, m *domain.Movie, genres []domain.Genre) error {
	return r.db.WithContext(ctx).Model(m).Association("Genres").Replace(genres)
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Movie{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MovieRepository) CreateGenre(ctx context.Context, g *domain.Genre) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *MovieRepository) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	var out []domain.Genre
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *MovieRepository) GetGenresByIDs(ctx context.Context, ids []int64) ([]domain.Genre, error) {
	var out []domain.Genre
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}
