package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SeatType string

const (
	SeatStandard   SeatType = "standard"
	SeatVIP        SeatType = "vip"
	SeatCouple     SeatType = "couple"
	SeatAccessible SeatType = "accessible"
)

var seatMultipliers = map[SeatType]decimal.Decimal{
	SeatStandard:   decimal.NewFromInt(1),
	SeatVIP:        decimal.NewFromFloat(1.5),
	SeatCouple:     decimal.NewFromInt(2),
	SeatAccessible: decimal.NewFromInt(1),
}

// Multiplier returns the price factor for a seat tier. Unknown types
// charge the standard rate.
func (t SeatType) Multiplier() decimal.Decimal {
	if m, ok := seatMultipliers[t]; ok {
		return m
	}
	return seatMultipliers[SeatStandard]
}

func (t SeatType) Valid() bool {
	_, ok := seatMultipliers[t]
	return ok
}

type Seat struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Row       string    `json:"row" gorm:"size:5" validate:"required,max=5"`
	Number    int       `json:"number" validate:"required,gt=0"`
	Type      SeatType  `json:"type" gorm:"size:20;default:standard"`
	RoomID    int64     `json:"room_id" gorm:"index"`
	Room      *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeatStatus pairs a seat with its availability for one screening.
type SeatStatus struct {
	Seat        Seat `json:"seat"`
	IsAvailable bool `json:"is_available"`
}
