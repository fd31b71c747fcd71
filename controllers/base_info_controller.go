package controllers

import (
	"math"

	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
)

// BaseInfo represents the platform-wide statistics
type BaseInfo struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}

// ComputeBaseInfo aggregates the platform statistics over the full dataset.
// Always a fresh computation, nothing is cached. The average rating is
// rounded to one decimal place (half away from zero) and is 0.0 when there
// are no reviews.
func ComputeBaseInfo() (*BaseInfo, error) {
	var info BaseInfo

	if err := config.DB.Model(&models.Review{}).Count(&info.ReviewCount).Error; err != nil {
		return nil, err
	}

	if info.ReviewCount > 0 {
		var avg float64
		if err := config.DB.Model(&models.Review{}).
			Select("AVG(rating)").Scan(&avg).Error; err != nil {
			return nil, err
		}
		info.AverageRating = math.Round(avg*10) / 10
	}

	if err := config.DB.Model(&models.User{}).
		Where("type = ?", models.UserTypeBusiness).
		Count(&info.BusinessProfileCount).Error; err != nil {
		return nil, err
	}

	if err := config.DB.Model(&models.Offer{}).Count(&info.OfferCount).Error; err != nil {
		return nil, err
	}

	return &info, nil
}

// GetBaseInfo handles the platform statistics endpoint. Any underlying fault
// is caught here and returned as a generic server error.
func GetBaseInfo(c *gin.Context) {
	utils.LogInfo("GetBaseInfo called")

	info, err := ComputeBaseInfo()
	if err != nil {
		utils.LogError("Failed to compute base info: %v", err)
		utils.InternalServerError(c, "Failed to fetch base info", nil)
		return
	}

	utils.Success(c, "Base info retrieved successfully", info)
}
