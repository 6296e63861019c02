package repository

import (
	"context"
	"time"

	"cinebook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScreeningRepository struct {
	db *gorm.DB
}

func NewScreeningRepository(db *gorm.DB) *ScreeningRepository {
	return &ScreeningRepository{db: db}
}

func (r *ScreeningRepository) GetByID(ctx context.Context, id int64) (*domain.Screening, error) {
	var s domain.Screening
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Room").
		Preload("Room.Cinema").
		First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

type ScreeningFilter struct {
	MovieID int64
	RoomID  int64
	Date    *time.Time
}

func (r *ScreeningRepository) List(ctx context.Context, f ScreeningFilter) ([]domain.Screening, error) {
	q := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Room").
		Preload("Room.Cinema")

	if f.MovieID != 0 {
		q = q.Where("movie_id = ?", f.MovieID)
	}
	if f.RoomID != 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.Date != nil {
		dayStart := time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), 0, 0, 0, 0, f.Date.Location())
		q = q.Where("start_time >= ? AND start_time < ?", dayStart, dayStart.Add(24*time.Hour))
	}

	var out []domain.Screening
	err := q.Order("start_time ASC").Find(&out).Error
	return out, err
}

type scheduledRow struct {
	ID              int64     `gorm:"column:id"`
	StartTime       time.Time `gorm:"column:start_time"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
}

// roomSchedule loads every screening in the room together with its
// movie duration, so overlap can be decided in Go rather than in
// dialect-specific interval SQL.
func roomSchedule(tx *gorm.DB, roomID, excludeID int64) ([]scheduledRow, error) {
	q := tx.Table("screenings").
		Select("screenings.id, screenings.start_time, movies.duration_minutes").
		Joins("JOIN movies ON movies.id = screenings.movie_id").
		Where("screenings.room_id = ?", roomID)
	if excludeID != 0 {
		q = q.Where("screenings.id <> ?", excludeID)
	}

	var rows []scheduledRow
	err := q.Scan(&rows).Error
	return rows, err
}

func scheduleConflicts(candidate domain.Interval, rows []scheduledRow) bool {
	for _, row := range rows {
		if candidate.ConflictsWith(domain.ScreeningInterval(row.StartTime, row.DurationMinutes)) {
			return true
		}
	}
	return false
}

// CreateConflictFree inserts the screening only if it keeps the room's
// schedule conflict-free. The room row is locked for the duration of
// the transaction so two staff members cannot slip overlapping
// screenings past each other.
func (r *ScreeningRepository) CreateConflictFree(ctx context.Context, s *domain.Screening, durationMinutes int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room domain.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, s.RoomID).Error; err != nil {
			return err
		}

		rows, err := roomSchedule(tx, s.RoomID, 0)
		if err != nil {
			return err
		}
		if scheduleConflicts(domain.ScreeningInterval(s.StartTime, durationMinutes), rows) {
			return domain.ErrSchedulingConflict
		}

		return tx.Omit("Movie", "Room").Create(s).Error
	})
}

// UpdateConflictFree re-validates the schedule against the screening's
// (possibly new) room, start time and movie duration, skipping the
// screening itself.
func (r *ScreeningRepository) UpdateConflictFree(ctx context.Context, s *domain.Screening, durationMinutes int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room domain.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, s.RoomID).Error; err != nil {
			return err
		}

		rows, err := roomSchedule(tx, s.RoomID, s.ID)
		if err != nil {
			return err
		}
		if scheduleConflicts(domain.ScreeningInterval(s.StartTime, durationMinutes), rows) {
			return domain.ErrSchedulingConflict
		}

		return tx.Omit("Movie", "Room").Save(s).Error
	})
}

// Save writes changes that cannot move the screening in time or room,
// such as price or availability flips.
func (r *ScreeningRepository) Save(ctx context.Context, s *domain.Screening) error {
	return r.db.WithContext(ctx).Omit("Movie", "Room").Save(s).Error
}

func (r *ScreeningRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Screening{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasForRoom reports whether any screening still references the room.
func (r *ScreeningRepository) HasForRoom(ctx context.Context, roomID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Screening{}).
		Where("room_id = ?", roomID).
		Count(&cnt).Error
	return cnt > 0, err
}
