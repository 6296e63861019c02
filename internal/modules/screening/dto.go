package screening

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateScreeningRequest struct {
	MovieID   int64           `json:"movie_id" binding:"required"`
	RoomID    int64           `json:"room_id" binding:"required"`
	StartTime time.Time       `json:"start_time" binding:"required"`
	Format    string          `json:"format" binding:"required,max=10"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

// UpdateScreeningRequest carries partial updates; nil fields keep the
// stored value.
type UpdateScreeningRequest struct {
	MovieID     *int64           `json:"movie_id"`
	RoomID      *int64           `json:"room_id"`
	StartTime   *time.Time       `json:"start_time"`
	Format      *string          `json:"format"`
	Price       *decimal.Decimal `json:"price"`
	IsAvailable *bool            `json:"is_available"`
}

type ListScreeningsQuery struct {
	MovieID int64  `form:"movie_id"`
	RoomID  int64  `form:"room_id"`
	Date    string `form:"date"` // YYYY-MM-DD
}
