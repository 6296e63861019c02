package screening

import (
	"context"

	"cinebook/internal/domain"
	"cinebook/internal/repository"
)

type ScreeningRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Screening, error)
	List(ctx context.Context, f repository.ScreeningFilter) ([]domain.Screening, error)
	CreateConflictFree(ctx context.Context, s *domain.Screening, durationMinutes int) error
	UpdateConflictFree(ctx context.Context, s *domain.Screening, durationMinutes int) error
	Save(ctx context.Context, s *domain.Screening) error
	Delete(ctx context.Context, id int64) error
}

type MovieRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
