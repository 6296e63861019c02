package catalog

import "time"

type CreateMovieRequest struct {
	Title           string    `json:"title" binding:"required,max=255"`
	Description     string    `json:"description"`
	Director        string    `json:"director" binding:"max=255"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0"`
	ReleaseDate     time.Time `json:"release_date"`
	PosterURL       string    `json:"poster_url"`
	TrailerURL      string    `json:"trailer_url"`
	GenreIDs        []int64   `json:"genre_ids"`
}

type UpdateMovieRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Director        *string    `json:"director"`
	DurationMinutes *int       `json:"duration_minutes"`
	ReleaseDate     *time.Time `json:"release_date"`
	PosterURL       *string    `json:"poster_url"`
	TrailerURL      *string    `json:"trailer_url"`
	GenreIDs        []int64    `json:"genre_ids"`
}

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CinemaRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Address string `json:"address" binding:"max=255"`
	City    string `json:"city" binding:"max=100"`
}

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	CinemaID int64  `json:"cinema_id" binding:"required"`
}

type UpdateRoomRequest struct {
	Name *string `json:"name"`
}
