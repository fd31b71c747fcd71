package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every valid order status. Transitions are unrestricted:
// any status may be set from any other.
var OrderStatuses = []string{
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// IsValidOrderStatus reports whether s is one of the enumerated statuses.
func IsValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Order is a snapshot of an offer detail taken at the moment of placement.
// It copies the detail's commercial fields by value and keeps no reference to
// the source detail, so later detail edits never touch existing orders.
type Order struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CustomerUserID     uint      `json:"customer_user"`
	BusinessUserID     uint      `json:"business_user"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              float64   `json:"price"`
	Features           []string  `json:"features" gorm:"serializer:json"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status" gorm:"default:'in_progress'"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
