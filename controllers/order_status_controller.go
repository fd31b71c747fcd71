package controllers

import (
	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
)

// OrderStatusRequest represents the order status patch body
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus updates the status of an order. Only the business user
// the order belongs to may change it; any enumerated status may be set from
// any other.
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")

	user := c.MustGet("user").(models.User)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.LogError("Order not found: %v", err)
		utils.NotFound(c, "Order not found")
		return
	}

	if order.BusinessUserID != user.ID {
		utils.LogError("User %d attempted to update order %d of business user %d", user.ID, order.ID, order.BusinessUserID)
		utils.Forbidden(c, "You can only update orders for your own offers")
		return
	}

	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Order status update failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", gin.H{"status": "A status value is required."})
		return
	}

	if !models.IsValidOrderStatus(req.Status) {
		utils.LogError("Order status update failed - Invalid status value: %s", req.Status)
		utils.BadRequest(c, "Invalid status value", gin.H{"status": "Status must be one of 'in_progress', 'completed' or 'cancelled'."})
		return
	}

	order.Status = req.Status
	if err := config.DB.Save(&order).Error; err != nil {
		utils.LogError("Failed to update order status: %v", err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	utils.LogInfo("Order %d status updated to %s", order.ID, order.Status)
	utils.Success(c, "Order updated successfully", order)
}

// DeleteOrder deletes an order. Admin only.
func DeleteOrder(c *gin.Context) {
	utils.LogInfo("DeleteOrder called")

	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.LogError("Order not found: %v", err)
		utils.NotFound(c, "Order not found")
		return
	}

	if err := config.DB.Delete(&order).Error; err != nil {
		utils.LogError("Failed to delete order: %v", err)
		utils.InternalServerError(c, "Failed to delete order", nil)
		return
	}

	utils.LogInfo("Order %d deleted", order.ID)
	utils.NoContent(c)
}
