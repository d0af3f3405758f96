package models

import (
	"time"
)

// OrderItem snapshots the menu item name and price at purchase time, so
// later catalog edits never rewrite order history.
type OrderItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null"`
	ItemName   string    `json:"item_name" gorm:"not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	Price      float64   `json:"price" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
