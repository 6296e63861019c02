package domain

import "time"

type Cinema struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255" validate:"required,max=255"`
	Address   string    `json:"address" gorm:"size:255"`
	City      string    `json:"city" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Room struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:50" validate:"required,max=50"`
	TotalSeats int       `json:"total_seats"`
	CinemaID   int64     `json:"cinema_id" gorm:"index"`
	Cinema     *Cinema   `json:"cinema,omitempty" gorm:"foreignKey:CinemaID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
