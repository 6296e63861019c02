package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleBuffer is the changeover padding required between two
// screenings in the same room.
const ScheduleBuffer = 30 * time.Minute

var ErrSchedulingConflict = errors.New("screening overlaps another screening in this room")

type Screening struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	StartTime   time.Time       `json:"start_time" gorm:"index"`
	Format      string          `json:"format" gorm:"size:10" validate:"required,max=10"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)" validate:"required"`
	IsAvailable bool            `json:"is_available" gorm:"default:true"`
	MovieID     int64           `json:"movie_id" gorm:"index"`
	Movie       *Movie          `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
	RoomID      int64           `json:"room_id" gorm:"index"`
	Room        *Room           `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Interval is the occupied time of a screening, before buffering.
type Interval struct {
	Start time.Time
	End   time.Time
}

func ScreeningInterval(start time.Time, durationMinutes int) Interval {
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// ConflictsWith reports whether two screenings sit closer together than
// ScheduleBuffer. Exactly ScheduleBuffer apart is allowed: a 10:00
// showing of a 120-minute movie blocks the room until 12:30, and a
// 12:30 start is the earliest non-conflicting follow-up.
func (iv Interval) ConflictsWith(other Interval) bool {
	return iv.Start.Before(other.End.Add(ScheduleBuffer)) &&
		other.Start.Before(iv.End.Add(ScheduleBuffer))
}
