package domain

import "time"

type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:100" validate:"required,max=100"`
}

type Movie struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Title           string    `json:"title" gorm:"size:255" validate:"required,max=255"`
	Description     string    `json:"description" gorm:"type:text"`
	Director        string    `json:"director" gorm:"size:255"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	ReleaseDate     time.Time `json:"release_date"`
	PosterURL       string    `json:"poster_url,omitempty" gorm:"type:text"`
	TrailerURL      string    `json:"trailer_url,omitempty" gorm:"type:text"`
	Genres          []Genre   `json:"genres,omitempty" gorm:"many2many:movie_genres"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
