package models

import (
	"time"
)

// Order is append-only: created once at checkout, never edited except for
// the payment status transition pending -> paid.
type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	UserID        uint        `json:"user_id" gorm:"not null;index"`
	Total         float64     `json:"total" gorm:"not null"`
	CustomerName  string      `json:"customer_name" gorm:"not null"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail string      `json:"customer_email"`
	Status        string      `json:"status" gorm:"default:'pending'"`
	PaymentStatus string      `json:"payment_status" gorm:"default:'pending'"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time   `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// OrderStats are order counts over wall-clock windows, all computed in UTC.
type OrderStats struct {
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"thisWeek"`
	ThisMonth int64 `json:"thisMonth"`
	ThisYear  int64 `json:"thisYear"`
	AllTime   int64 `json:"allTime"`
}
