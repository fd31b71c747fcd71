package routes

import (
	"github.com/mhoffmann-dev/GigSphere/controllers"
	"github.com/mhoffmann-dev/GigSphere/middleware"
	"github.com/gin-gonic/gin"
)

// initReviewRoutes initializes review routes
func initReviewRoutes(router *gin.RouterGroup) {
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/reviews", controllers.GetReviews)
		protected.POST("/reviews", controllers.CreateReview)
		protected.PATCH("/reviews/:id", controllers.UpdateReview)
		protected.DELETE("/reviews/:id", controllers.DeleteReview)
	}
}
