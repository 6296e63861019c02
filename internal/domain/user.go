package domain

import "time"

type UserRole string

const (
	RoleMoviegoer UserRole = "moviegoer"
	RoleStaff     UserRole = "staff"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Role         UserRole  `json:"role" gorm:"size:20"`
	Name         string    `json:"name" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
