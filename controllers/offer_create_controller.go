package controllers

import (
	"time"

	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OfferCreateRequest represents the offer creation body
type OfferCreateRequest struct {
	Title       string               `json:"title" binding:"required"`
	Image       string               `json:"image"`
	Description string               `json:"description" binding:"required"`
	Details     []OfferDetailRequest `json:"details"`
}

// OfferResponse is the full response shape for a single offer, carrying the
// read-time aggregates over its tiers
type OfferResponse struct {
	ID              uint                 `json:"id"`
	UserID          uint                 `json:"user_id"`
	Title           string               `json:"title"`
	Image           string               `json:"image"`
	Description     string               `json:"description"`
	Details         []models.OfferDetail `json:"details"`
	MinPrice        *float64             `json:"min_price"`
	MinDeliveryTime *int                 `json:"min_delivery_time"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func offerResponse(offer *models.Offer) OfferResponse {
	return OfferResponse{
		ID:              offer.ID,
		UserID:          offer.UserID,
		Title:           offer.Title,
		Image:           offer.Image,
		Description:     offer.Description,
		Details:         offer.Details,
		MinPrice:        MinPrice(offer.Details),
		MinDeliveryTime: MinDeliveryTime(offer.Details),
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
	}
}

// CreateOffer handles offer creation by a business user. The submitted detail
// list must pass the tier-count validation; the offer and all its tiers are
// committed in one transaction.
func CreateOffer(c *gin.Context) {
	utils.LogInfo("CreateOffer called")

	user := c.MustGet("user").(models.User)

	var req OfferCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Offer creation failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if appErr := ValidateDetailCount(req.Details); appErr != nil {
		utils.LogError("Offer creation failed - %s", appErr.Message)
		utils.BadRequest(c, "Invalid details", gin.H{"details": appErr.Message})
		return
	}

	offer := models.Offer{
		UserID:      user.ID,
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&offer).Error; err != nil {
			return err
		}
		details, err := UpsertOfferDetails(tx, &offer, req.Details)
		if err != nil {
			return err
		}
		offer.Details = details
		return nil
	})
	if err != nil {
		utils.LogError("Failed to create offer: %v", err)
		utils.InternalServerError(c, "Failed to create offer", nil)
		return
	}

	utils.LogInfo("Offer %d created by user %d", offer.ID, user.ID)
	utils.Created(c, "Offer created successfully", offerResponse(&offer))
}
