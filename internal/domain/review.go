package domain

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment,omitempty" gorm:"type:text"`
	MovieID   int64     `json:"movie_id" gorm:"index"`
	Movie     *Movie    `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
	UserID    int64     `json:"user_id" gorm:"index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
