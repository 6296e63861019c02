package review

import (
	"context"
	"errors"

	"cinebook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	reviews ReviewRepository
	movies  MovieRepository
}

func NewService(reviews ReviewRepository, movies MovieRepository) *Service {
	return &Service{reviews: reviews, movies: movies}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if _, err := s.movies.GetByID(ctx, req.MovieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		Rating:  req.Rating,
		Comment: req.Comment,
		MovieID: req.MovieID,
		UserID:  userID,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByMovie(ctx context.Context, movieID int64) ([]domain.Review, error) {
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return s.reviews.ListByMovie(ctx, movieID)
}

// Update edits a review. Only the author may touch it; staff cannot
// rewrite other people's opinions, only remove them.
func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateReviewRequest) (*domain.Review, error) {
	rv, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rv.UserID != userID {
		return nil, ErrForbidden
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrValidation
		}
		rv.Rating = *req.Rating
	}
	if req.Comment != nil {
		rv.Comment = *req.Comment
	}

	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, userID int64, role domain.UserRole, id int64) error {
	rv, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if rv.UserID != userID && role != domain.RoleStaff {
		return ErrForbidden
	}

	err = s.reviews.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}
