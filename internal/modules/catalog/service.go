package catalog

import (
	"context"
	"errors"

	"cinebook/internal/domain"
	"cinebook/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	movies     MovieRepository
	cinemas    CinemaRepository
	rooms      RoomRepository
	screenings ScreeningRepository
}

func NewService(movies MovieRepository, cinemas CinemaRepository, rooms RoomRepository, screenings ScreeningRepository) *Service {
	return &Service{movies: movies, cinemas: cinemas, rooms: rooms, screenings: screenings}
}

// Movies

func (s *Service) CreateMovie(ctx context.Context, req CreateMovieRequest) (*domain.Movie, error) {
	genres, err := s.resolveGenres(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}

	movie := &domain.Movie{
		Title:           req.Title,
		Description:     req.Description,
		Director:        req.Director,
		DurationMinutes: req.DurationMinutes,
		ReleaseDate:     req.ReleaseDate,
		PosterURL:       req.PosterURL,
		TrailerURL:      req.TrailerURL,
		Genres:          genres,
	}
	if fields := validator.Validate(movie); fields != nil {
		return nil, ErrValidation
	}
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, err
	}
	return s.GetMovie(ctx, movie.ID)
}

func (s *Service) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *Service) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	return s.movies.List(ctx)
}

func (s *Service) UpdateMovie(ctx context.Context, id int64, req UpdateMovieRequest) (*domain.Movie, error) {
	movie, err := s.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrValidation
		}
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrValidation
		}
		movie.DurationMinutes = *req.DurationMinutes
	}
	if req.ReleaseDate != nil {
		movie.ReleaseDate = *req.ReleaseDate
	}
	if req.PosterURL != nil {
		movie.PosterURL = *req.PosterURL
	}
	if req.TrailerURL != nil {
		movie.TrailerURL = *req.TrailerURL
	}

	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}

	if req.GenreIDs != nil {
		genres, err := s.resolveGenres(ctx, req.GenreIDs)
		if err != nil {
			return nil, err
		}
		if err := s.movies.ReplaceGenres(ctx, movie, genres); err != nil {
			return nil, err
		}
	}

	return s.GetMovie(ctx, movie.ID)
}

func (s *Service) DeleteMovie(ctx context.Context, id int64) error {
	err := s.movies.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMovieNotFound
	}
	return err
}

func (s *Service) resolveGenres(ctx context.Context, ids []int64) ([]domain.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	genres, err := s.movies.GetGenresByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(ids) {
		return nil, ErrGenreNotFound
	}
	return genres, nil
}

// Genres

func (s *Service) CreateGenre(ctx context.Context, req CreateGenreRequest) (*domain.Genre, error) {
	genre := &domain.Genre{Name: req.Name}
	if err := s.movies.CreateGenre(ctx, genre); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrValidation
		}
		return nil, err
	}
	return genre, nil
}

func (s *Service) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.movies.ListGenres(ctx)
}

// Cinemas

func (s *Service) CreateCinema(ctx context.Context, req CinemaRequest) (*domain.Cinema, error) {
	cinema := &domain.Cinema{Name: req.Name, Address: req.Address, City: req.City}
	if err := s.cinemas.Create(ctx, cinema); err != nil {
		return nil, err
	}
	return cinema, nil
}

func (s *Service) GetCinema(ctx context.Context, id int64) (*domain.Cinema, error) {
	cinema, err := s.cinemas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCinemaNotFound
		}
		return nil, err
	}
	return cinema, nil
}

func (s *Service) ListCinemas(ctx context.Context) ([]domain.Cinema, error) {
	return s.cinemas.List(ctx)
}

func (s *Service) UpdateCinema(ctx context.Context, id int64, req CinemaRequest) (*domain.Cinema, error) {
	cinema, err := s.GetCinema(ctx, id)
	if err != nil {
		return nil, err
	}
	cinema.Name = req.Name
	cinema.Address = req.Address
	cinema.City = req.City
	if err := s.cinemas.Update(ctx, cinema); err != nil {
		return nil, err
	}
	return cinema, nil
}

func (s *Service) DeleteCinema(ctx context.Context, id int64) error {
	err := s.cinemas.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCinemaNotFound
	}
	return err
}

// Rooms

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if _, err := s.GetCinema(ctx, req.CinemaID); err != nil {
		return nil, err
	}
	room := &domain.Room{Name: req.Name, CinemaID: req.CinemaID}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context, cinemaID int64) ([]domain.Room, error) {
	if _, err := s.GetCinema(ctx, cinemaID); err != nil {
		return nil, err
	}
	return s.rooms.ListByCinema(ctx, cinemaID)
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" || len(*req.Name) > 50 {
			return nil, ErrValidation
		}
		room.Name = *req.Name
	}
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom refuses while any screening is scheduled in the room.
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if _, err := s.GetRoom(ctx, id); err != nil {
		return err
	}

	inUse, err := s.screenings.HasForRoom(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrRoomInUse
	}

	err = s.rooms.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoomNotFound
	}
	return err
}
