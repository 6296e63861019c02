package snack

import (
	"context"
	"errors"

	"cinebook/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SnackRepository interface {
	Create(ctx context.Context, s *domain.Snack) error
	GetByID(ctx context.Context, id int64) (*domain.Snack, error)
	List(ctx context.Context) ([]domain.Snack, error)
	Update(ctx context.Context, s *domain.Snack) error
	Delete(ctx context.Context, id int64) error
}

type SnackRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
}

type Service struct {
	snacks SnackRepository
}

func NewService(snacks SnackRepository) *Service {
	return &Service{snacks: snacks}
}

func (s *Service) Create(ctx context.Context, req SnackRequest) (*domain.Snack, error) {
	if req.Price.IsNegative() {
		return nil, ErrValidation
	}
	sn := &domain.Snack{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := s.snacks.Create(ctx, sn); err != nil {
		return nil, err
	}
	return sn, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Snack, error) {
	sn, err := s.snacks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sn, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Snack, error) {
	return s.snacks.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, req SnackRequest) (*domain.Snack, error) {
	sn, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, ErrValidation
	}

	sn.Name = req.Name
	sn.Description = req.Description
	sn.Price = req.Price
	sn.ImageURL = req.ImageURL

	if err := s.snacks.Update(ctx, sn); err != nil {
		return nil, err
	}
	return sn, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.snacks.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
