package routes

import (
	"github.com/mhoffmann-dev/GigSphere/controllers"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	api := router.Group("/api")
	{
		initAuthRoutes(api)
		initProfileRoutes(api)
		initOfferRoutes(api)
		initOrderRoutes(api)
		initReviewRoutes(api)

		// Platform statistics, publicly readable
		api.GET("/base-info", controllers.GetBaseInfo)
	}

	return router
}
