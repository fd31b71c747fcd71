package controllers

import (
	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
)

// CountOrdersByStatus returns the number of orders for the given business
// user with exactly the given status.
func CountOrdersByStatus(businessUserID uint, status string) (int64, error) {
	var count int64
	err := config.DB.Model(&models.Order{}).
		Where("business_user_id = ? AND status = ?", businessUserID, status).
		Count(&count).Error
	return count, err
}

// GetOrderCount returns the number of in-progress orders for a business user
func GetOrderCount(c *gin.Context) {
	utils.LogInfo("GetOrderCount called")

	businessUser, ok := findBusinessUser(c)
	if !ok {
		return
	}

	count, err := CountOrdersByStatus(businessUser.ID, models.OrderStatusInProgress)
	if err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to count orders", nil)
		return
	}

	utils.Success(c, "Order count retrieved successfully", gin.H{"order_count": count})
}

// GetCompletedOrderCount returns the number of completed orders for a business user
func GetCompletedOrderCount(c *gin.Context) {
	utils.LogInfo("GetCompletedOrderCount called")

	businessUser, ok := findBusinessUser(c)
	if !ok {
		return
	}

	count, err := CountOrdersByStatus(businessUser.ID, models.OrderStatusCompleted)
	if err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to count orders", nil)
		return
	}

	utils.Success(c, "Completed order count retrieved successfully", gin.H{"completed_order_count": count})
}

func findBusinessUser(c *gin.Context) (*models.User, bool) {
	businessUserID := c.Param("business_user_id")

	var businessUser models.User
	if err := config.DB.Where("id = ? AND type = ?", businessUserID, models.UserTypeBusiness).
		First(&businessUser).Error; err != nil {
		utils.LogError("Business user not found: %v", err)
		utils.NotFound(c, "Business user not found")
		return nil, false
	}
	return &businessUser, true
}
