package repository

import (
	"context"

	"cinebook/internal/domain"

	"gorm.io/gorm"
)

type SeatRepository struct {
	db *gorm.DB
}

func NewSeatRepository(db *gorm.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

func (r *SeatRepository) CreateBatch(ctx context.Context, seats []domain.Seat) ([]domain.Seat, error) {
	if len(seats) == 0 {
		return nil, nil
	}
	if err := r.db.WithContext(ctx).Create(&seats).Error; err != nil {
		return nil, err
	}
	return seats, nil
}

func (r *SeatRepository) GetByID(ctx context.Context, id int64) (*domain.Seat, error) {
	var s domain.Seat
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByIDs returns the seats it finds; callers compare lengths to
// detect dangling IDs.
func (r *SeatRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Seat, error) {
	var out []domain.Seat
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *SeatRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.Seat, error) {
	var out []domain.Seat
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("row ASC, number ASC").
		Find(&out).Error
	return out, err
}

func (r *SeatRepository) Update(ctx context.Context, s *domain.Seat) error {
	return r.db.WithContext(ctx).Omit("Room").Save(s).Error
}

func (r *SeatRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Seat{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
