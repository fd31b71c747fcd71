package controllers

import (
	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
)

// ReviewUpdateRequest represents the review patch body
type ReviewUpdateRequest struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

// UpdateReview updates the rating and description of the caller's own review
func UpdateReview(c *gin.Context) {
	utils.LogInfo("UpdateReview called")

	user := c.MustGet("user").(models.User)
	reviewID := c.Param("id")

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		utils.LogError("Review not found: %v", err)
		utils.NotFound(c, "Review not found")
		return
	}

	if review.ReviewerID != user.ID {
		utils.LogError("User %d attempted to update review %d of user %d", user.ID, review.ID, review.ReviewerID)
		utils.Forbidden(c, "You can only update your own reviews")
		return
	}

	var req ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Review update failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if req.Rating != nil {
		if valid, msg := utils.ValidateRating(*req.Rating); !valid {
			utils.LogError("Review update failed - Invalid rating: %d", *req.Rating)
			utils.BadRequest(c, "Invalid rating", gin.H{"rating": msg})
			return
		}
		review.Rating = *req.Rating
	}
	if req.Description != nil {
		review.Description = *req.Description
	}

	if err := config.DB.Save(&review).Error; err != nil {
		utils.LogError("Failed to update review: %v", err)
		utils.InternalServerError(c, "Failed to update review", nil)
		return
	}

	utils.LogInfo("Review %d updated by user %d", review.ID, user.ID)
	utils.Success(c, "Review updated successfully", review)
}

// DeleteReview deletes the caller's own review
func DeleteReview(c *gin.Context) {
	utils.LogInfo("DeleteReview called")

	user := c.MustGet("user").(models.User)
	reviewID := c.Param("id")

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		utils.LogError("Review not found: %v", err)
		utils.NotFound(c, "Review not found")
		return
	}

	if review.ReviewerID != user.ID {
		utils.LogError("User %d attempted to delete review %d of user %d", user.ID, review.ID, review.ReviewerID)
		utils.Forbidden(c, "You can only delete your own reviews")
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		utils.LogError("Failed to delete review: %v", err)
		utils.InternalServerError(c, "Failed to delete review", nil)
		return
	}

	utils.LogInfo("Review %d deleted by user %d", review.ID, user.ID)
	utils.NoContent(c)
}
