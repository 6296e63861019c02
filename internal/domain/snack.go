package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Snack struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255" validate:"required,max=255"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)" validate:"required"`
	ImageURL    string          `json:"image_url,omitempty" gorm:"type:text"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
