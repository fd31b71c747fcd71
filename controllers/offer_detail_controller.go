package controllers

import (
	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
)

// GetOffer retrieves a single offer with its tiers and read-time aggregates
func GetOffer(c *gin.Context) {
	utils.LogInfo("GetOffer called")

	offerID := c.Param("id")

	var offer models.Offer
	if err := config.DB.Preload("Details").First(&offer, offerID).Error; err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, "Offer not found")
		return
	}

	utils.Success(c, "Offer retrieved successfully", offerResponse(&offer))
}

// DeleteOffer deletes an offer owned by the caller, cascading to its tiers
func DeleteOffer(c *gin.Context) {
	utils.LogInfo("DeleteOffer called")

	user := c.MustGet("user").(models.User)
	offerID := c.Param("id")

	var offer models.Offer
	if err := config.DB.First(&offer, offerID).Error; err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, "Offer not found")
		return
	}

	if offer.UserID != user.ID {
		utils.LogError("User %d attempted to delete offer %d owned by user %d", user.ID, offer.ID, offer.UserID)
		utils.Forbidden(c, "You can only delete your own offers")
		return
	}

	if err := config.DB.Select("Details").Delete(&offer).Error; err != nil {
		utils.LogError("Failed to delete offer: %v", err)
		utils.InternalServerError(c, "Failed to delete offer", nil)
		return
	}

	utils.LogInfo("Offer %d deleted by user %d", offer.ID, user.ID)
	utils.NoContent(c)
}

// GetOfferDetail retrieves a single pricing tier by its ID
func GetOfferDetail(c *gin.Context) {
	utils.LogInfo("GetOfferDetail called")

	detailID := c.Param("id")

	var detail models.OfferDetail
	if err := config.DB.First(&detail, detailID).Error; err != nil {
		utils.LogError("Offer detail not found: %v", err)
		utils.NotFound(c, "Offer detail not found")
		return
	}

	utils.Success(c, "Offer detail retrieved successfully", detail)
}
