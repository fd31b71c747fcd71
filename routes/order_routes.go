package routes

import (
	"github.com/mhoffmann-dev/GigSphere/controllers"
	"github.com/mhoffmann-dev/GigSphere/middleware"
	"github.com/gin-gonic/gin"
)

// initOrderRoutes initializes order routes
func initOrderRoutes(router *gin.RouterGroup) {
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/orders", controllers.GetOrders)
		protected.GET("/order-count/:business_user_id", controllers.GetOrderCount)
		protected.GET("/completed-order-count/:business_user_id", controllers.GetCompletedOrderCount)
	}

	customer := router.Group("")
	customer.Use(middleware.AuthMiddleware(), middleware.CustomerMiddleware())
	{
		customer.POST("/orders", controllers.CreateOrder)
	}

	business := router.Group("")
	business.Use(middleware.AuthMiddleware(), middleware.BusinessMiddleware())
	{
		business.PATCH("/orders/:id", controllers.UpdateOrderStatus)
	}

	admin := router.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.DELETE("/orders/:id", controllers.DeleteOrder)
	}
}
