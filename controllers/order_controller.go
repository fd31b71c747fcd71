package controllers

import (
	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderCreateRequest represents the order creation body
type OrderCreateRequest struct {
	OfferDetailID uint `json:"offer_detail_id" binding:"required"`
}

// PlaceOrder builds an order snapshot from the referenced offer detail. The
// detail's commercial fields are copied by value at this instant; the order
// keeps no reference to the detail. Calling twice with the same detail id
// creates two independent orders.
func PlaceOrder(db *gorm.DB, customer *models.User, offerDetailID uint) (*models.Order, error) {
	var detail models.OfferDetail
	if err := db.Preload("Offer").First(&detail, offerDetailID).Error; err != nil {
		return nil, utils.NotFoundError("Offer detail not found", err)
	}

	features := detail.Features
	if features == nil {
		features = []string{}
	}

	order := models.Order{
		CustomerUserID:     customer.ID,
		BusinessUserID:     detail.Offer.UserID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           features,
		OfferType:          detail.OfferType,
		Status:             models.OrderStatusInProgress,
	}

	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder handles order placement by a customer
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	user := c.MustGet("user").(models.User)

	var req OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Order creation failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", gin.H{"offer_detail_id": "A valid offer_detail_id is required."})
		return
	}

	order, err := PlaceOrder(config.DB, &user, req.OfferDetailID)
	if err != nil {
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.LogError("Order creation failed - %s", appErr.Message)
			utils.NotFound(c, appErr.Message)
			return
		}
		utils.LogError("Failed to create order: %v", err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}

	utils.LogInfo("Order %d placed by user %d for business user %d", order.ID, user.ID, order.BusinessUserID)
	utils.Created(c, "Order created successfully", order)
}

// GetOrders lists all orders where the caller is the customer or the business
func GetOrders(c *gin.Context) {
	utils.LogInfo("GetOrders called")

	user := c.MustGet("user").(models.User)

	orders := make([]models.Order, 0)
	if err := config.DB.
		Where("customer_user_id = ? OR business_user_id = ?", user.ID, user.ID).
		Order("id").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	utils.LogDebug("Found %d orders for user %d", len(orders), user.ID)
	utils.Success(c, "Orders retrieved successfully", orders)
}
