package catalog

import (
	"context"

	"cinebook/internal/domain"
)

type MovieRepository interface {
	Create(ctx context.Context, m *domain.Movie) error
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)
	List(ctx context.Context) ([]domain.Movie, error)
	Update(ctx context.Context, m *domain.Movie) error
	ReplaceGenres(ctx context.Context, m *domain.Movie, genres []domain.Genre) error
	Delete(ctx context.Context, id int64) error
	CreateGenre(ctx context.Context, g *domain.Genre) error
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	GetGenresByIDs(ctx context.Context, ids []int64) ([]domain.Genre, error)
}

type CinemaRepository interface {
	Create(ctx context.Context, c *domain.Cinema) error
	GetByID(ctx context.Context, id int64) (*domain.Cinema, error)
	List(ctx context.Context) ([]domain.Cinema, error)
	Update(ctx context.Context, c *domain.Cinema) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByCinema(ctx context.Context, cinemaID int64) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

// ScreeningRepository guards room deletion: a room with scheduled
// screenings cannot disappear from under them.
type ScreeningRepository interface {
	HasForRoom(ctx context.Context, roomID int64) (bool, error)
}
