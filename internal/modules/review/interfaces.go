package review

import (
	"context"

	"cinebook/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListByMovie(ctx context.Context, movieID int64) ([]domain.Review, error)
	Update(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id int64) error
}

type MovieRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)
}
