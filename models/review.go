package models

import (
	"time"
)

// Review represents a rating given by a reviewer to a business user. The
// composite unique index makes the one-review-per-pair rule atomic at the
// storage layer; a concurrent duplicate insert fails instead of slipping past
// the controller-level check.
type Review struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BusinessUserID uint      `gorm:"uniqueIndex:idx_reviews_business_reviewer;not null" json:"business_user"`
	BusinessUser   User      `json:"-" gorm:"foreignKey:BusinessUserID"`
	ReviewerID     uint      `gorm:"uniqueIndex:idx_reviews_business_reviewer;not null" json:"reviewer"`
	Reviewer       User      `json:"-" gorm:"foreignKey:ReviewerID"`
	Rating         int       `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
