package models

import (
	"time"

	"gorm.io/gorm"
)

// User type constants
const (
	UserTypeBusiness = "business"
	UserTypeCustomer = "customer"
)

// User represents an account in the system. Business users own offers and
// receive orders and reviews; customer users place orders and write reviews.
type User struct {
	gorm.Model
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	Type        string    `gorm:"not null" json:"type"`
	IsGuest     bool      `json:"is_guest" gorm:"default:false"`
	IsAdmin     bool      `json:"is_admin" gorm:"default:false"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	LastLoginAt time.Time `json:"last_login_at"`
	Profile     Profile   `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

// Profile holds the public-facing details of a user. Every user gets exactly
// one profile, created during registration.
type Profile struct {
	gorm.Model
	UserID       uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	File         string `json:"file"`
	Location     string `json:"location"`
	Tel          string `json:"tel"`
	Description  string `json:"description"`
	WorkingHours string `json:"working_hours"`
}

// BlacklistedToken stores tokens invalidated by logout. Rows past ExpiresAt
// are dead weight and safe to purge.
type BlacklistedToken struct {
	gorm.Model
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}
