package routes

import (
	"github.com/mhoffmann-dev/GigSphere/controllers"
	"github.com/mhoffmann-dev/GigSphere/middleware"
	"github.com/gin-gonic/gin"
)

// initOfferRoutes initializes offer and offer-detail routes
func initOfferRoutes(router *gin.RouterGroup) {
	// Listing is public; everything else requires authentication
	router.GET("/offers", controllers.GetOffers)

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/offers/:id", controllers.GetOffer)
		protected.PATCH("/offers/:id", controllers.UpdateOffer)
		protected.DELETE("/offers/:id", controllers.DeleteOffer)
		protected.GET("/offerdetails/:id", controllers.GetOfferDetail)
	}

	business := router.Group("")
	business.Use(middleware.AuthMiddleware(), middleware.BusinessMiddleware())
	{
		business.POST("/offers", controllers.CreateOffer)
	}
}
