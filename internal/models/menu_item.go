package models

import (
	"time"
)

// MenuItem is a purchasable catalog entry. Removal is a soft delete via
// IsAvailable so historical order lines can still resolve the item by id.
type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
