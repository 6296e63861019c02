package screening

import (
	"context"
	"errors"
	"time"

	"cinebook/internal/domain"
	"cinebook/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	screenings ScreeningRepository
	movies     MovieRepository
	rooms      RoomRepository
}

func NewService(screenings ScreeningRepository, movies MovieRepository, rooms RoomRepository) *Service {
	return &Service{screenings: screenings, movies: movies, rooms: rooms}
}

// Create schedules a screening after validating that the movie and
// room exist and that the room stays conflict-free, including the
// changeover buffer on both sides.
func (s *Service) Create(ctx context.Context, req CreateScreeningRequest) (*domain.Screening, error) {
	if req.Price.IsNegative() {
		return nil, ErrValidation
	}

	movie, err := s.movies.GetByID(ctx, req.MovieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	sc := &domain.Screening{
		StartTime:   req.StartTime,
		Format:      req.Format,
		Price:       req.Price,
		IsAvailable: true,
		MovieID:     req.MovieID,
		RoomID:      req.RoomID,
	}
	if err := s.screenings.CreateConflictFree(ctx, sc, movie.DurationMinutes); err != nil {
		if errors.Is(err, domain.ErrSchedulingConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return s.screenings.GetByID(ctx, sc.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Screening, error) {
	sc, err := s.screenings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sc, nil
}

func (s *Service) List(ctx context.Context, q ListScreeningsQuery) ([]domain.Screening, error) {
	f := repository.ScreeningFilter{
		MovieID: q.MovieID,
		RoomID:  q.RoomID,
	}
	if q.Date != "" {
		day, err := time.Parse("2006-01-02", q.Date)
		if err != nil {
			return nil, ErrValidation
		}
		f.Date = &day
	}
	return s.screenings.List(ctx, f)
}

// Update applies a partial update. The schedule is re-validated only
// when the room, start time or movie changed; a price or availability
// edit cannot introduce a conflict and skips the locked re-check.
func (s *Service) Update(ctx context.Context, id int64, req UpdateScreeningRequest) (*domain.Screening, error) {
	sc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	reschedule := false
	if req.MovieID != nil && *req.MovieID != sc.MovieID {
		sc.MovieID = *req.MovieID
		reschedule = true
	}
	if req.RoomID != nil && *req.RoomID != sc.RoomID {
		if _, err := s.rooms.GetByID(ctx, *req.RoomID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, err
		}
		sc.RoomID = *req.RoomID
		reschedule = true
	}
	if req.StartTime != nil && !req.StartTime.Equal(sc.StartTime) {
		sc.StartTime = *req.StartTime
		reschedule = true
	}
	if req.Format != nil {
		if *req.Format == "" || len(*req.Format) > 10 {
			return nil, ErrValidation
		}
		sc.Format = *req.Format
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, ErrValidation
		}
		sc.Price = *req.Price
	}
	if req.IsAvailable != nil {
		sc.IsAvailable = *req.IsAvailable
	}

	if reschedule {
		movie, err := s.movies.GetByID(ctx, sc.MovieID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMovieNotFound
			}
			return nil, err
		}
		err = s.screenings.UpdateConflictFree(ctx, sc, movie.DurationMinutes)
		if errors.Is(err, domain.ErrSchedulingConflict) {
			return nil, ErrConflict
		}
		if err != nil {
			return nil, err
		}
	} else {
		if err := s.screenings.Save(ctx, sc); err != nil {
			return nil, err
		}
	}

	return s.screenings.GetByID(ctx, sc.ID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.screenings.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
