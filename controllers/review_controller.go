package controllers

import (
	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReviewCreateRequest represents the review creation body
type ReviewCreateRequest struct {
	BusinessUserID uint   `json:"business_user" binding:"required"`
	Rating         int    `json:"rating" binding:"required"`
	Description    string `json:"description"`
}

// CreateReview handles review creation. A user cannot review themself and can
// review each business user at most once; the duplicate check is backed by a
// unique index, so a concurrent duplicate surfaces as a conflict instead of
// slipping through.
func CreateReview(c *gin.Context) {
	utils.LogInfo("CreateReview called")

	user := c.MustGet("user").(models.User)

	var req ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Review creation failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if valid, msg := utils.ValidateRating(req.Rating); !valid {
		utils.LogError("Review creation failed - Invalid rating: %d", req.Rating)
		utils.BadRequest(c, "Invalid rating", gin.H{"rating": msg})
		return
	}

	if req.BusinessUserID == user.ID {
		utils.LogError("Review creation failed - User %d attempted to review themself", user.ID)
		utils.BadRequest(c, "Invalid review", gin.H{"business_user": "You cannot review yourself."})
		return
	}

	var businessUser models.User
	if err := config.DB.Where("id = ? AND type = ?", req.BusinessUserID, models.UserTypeBusiness).
		First(&businessUser).Error; err != nil {
		utils.LogError("Review creation failed - Business user not found: %d", req.BusinessUserID)
		utils.NotFound(c, "Business user not found")
		return
	}

	var existing models.Review
	if err := config.DB.Where("business_user_id = ? AND reviewer_id = ?", req.BusinessUserID, user.ID).
		First(&existing).Error; err == nil {
		utils.LogError("Review creation failed - User %d already reviewed business user %d", user.ID, req.BusinessUserID)
		utils.BadRequest(c, "Duplicate review", gin.H{"business_user": "You have already reviewed this provider."})
		return
	}

	review := models.Review{
		BusinessUserID: req.BusinessUserID,
		ReviewerID:     user.ID,
		Rating:         req.Rating,
		Description:    req.Description,
	}

	if err := InsertReview(config.DB, &review); err != nil {
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.LogError("Review creation failed - Duplicate review raced past validation: %v", err)
			utils.Conflict(c, "Duplicate review", appErr.Message)
			return
		}
		utils.LogError("Failed to create review: %v", err)
		utils.InternalServerError(c, "Failed to create review", nil)
		return
	}

	utils.LogInfo("Review %d created by user %d for business user %d", review.ID, user.ID, req.BusinessUserID)
	utils.Created(c, "Review created successfully", review)
}

// InsertReview stores a review, translating a unique-index violation into a
// conflict error. The index is the backstop for two inserts racing past the
// duplicate lookup.
func InsertReview(db *gorm.DB, review *models.Review) error {
	if err := db.Create(review).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			return utils.ConflictError("You have already reviewed this provider.", err)
		}
		return err
	}
	return nil
}

// GetReviews lists reviews with optional filtering and ordering
func GetReviews(c *gin.Context) {
	utils.LogInfo("GetReviews called")

	query := config.DB.Model(&models.Review{})

	if businessUserID := c.Query("business_user_id"); businessUserID != "" {
		query = query.Where("business_user_id = ?", businessUserID)
	}
	if reviewerID := c.Query("reviewer_id"); reviewerID != "" {
		query = query.Where("reviewer_id = ?", reviewerID)
	}

	switch c.Query("ordering") {
	case "rating":
		query = query.Order("rating")
	case "updated_at":
		query = query.Order("updated_at")
	default:
		query = query.Order("updated_at desc")
	}

	reviews := make([]models.Review, 0)
	if err := query.Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews: %v", err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}

	utils.LogDebug("Found %d reviews", len(reviews))
	utils.Success(c, "Reviews retrieved successfully", reviews)
}
