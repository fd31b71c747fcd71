package models

import (
	"time"

	"gorm.io/gorm"
)

// Offer type constants for the three pricing tiers of an offer
const (
	OfferTypeBasic    = "basic"
	OfferTypeStandard = "standard"
	OfferTypePremium  = "premium"
)

// Offer represents a service offer created by a business user. An offer is
// always created together with exactly three details (one per tier).
type Offer struct {
	gorm.Model
	UserID      uint          `json:"user_id"`
	User        User          `json:"-" gorm:"foreignKey:UserID"`
	Title       string        `json:"title"`
	Image       string        `json:"image"`
	Description string        `json:"description"`
	Details     []OfferDetail `json:"details" gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// OfferDetail represents one pricing tier of an offer. Its identity is stable:
// updates overwrite fields in place, the id never changes.
type OfferDetail struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	OfferID            uint      `json:"offer_id"`
	Offer              Offer     `json:"-" gorm:"foreignKey:OfferID"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              float64   `json:"price"`
	Features           []string  `json:"features" gorm:"serializer:json"`
	OfferType          string    `json:"offer_type"`
	CreatedAt          time.Time `json:"created_at"`
}
