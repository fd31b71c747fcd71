package controllers

import (
	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OfferUpdateRequest represents the offer patch body. All fields are
// optional; details are upserted by offer_type with no count constraint.
type OfferUpdateRequest struct {
	Title       *string              `json:"title"`
	Image       *string              `json:"image"`
	Description *string              `json:"description"`
	Details     []OfferDetailRequest `json:"details"`
}

// UpdateOffer handles partial updates of an offer by its owner. Submitted
// details overwrite the existing tier of the same type in place (the tier id
// is stable); details with a new type are appended.
func UpdateOffer(c *gin.Context) {
	utils.LogInfo("UpdateOffer called")

	user := c.MustGet("user").(models.User)
	offerID := c.Param("id")

	var offer models.Offer
	if err := config.DB.First(&offer, offerID).Error; err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, "Offer not found")
		return
	}

	if offer.UserID != user.ID {
		utils.LogError("User %d attempted to update offer %d owned by user %d", user.ID, offer.ID, offer.UserID)
		utils.Forbidden(c, "You can only update your own offers")
		return
	}

	var req OfferUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Offer update failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if req.Title != nil {
			offer.Title = *req.Title
		}
		if req.Image != nil {
			offer.Image = *req.Image
		}
		if req.Description != nil {
			offer.Description = *req.Description
		}
		if err := tx.Save(&offer).Error; err != nil {
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
		utils.LogError("Failed to update offer: %v", err)
		utils.InternalServerError(c, "Failed to update offer", nil)
		return
	}

	utils.LogInfo("Offer %d updated by user %d", offer.ID, user.ID)
	utils.Success(c, "Offer updated successfully", offerResponse(&offer))
}
