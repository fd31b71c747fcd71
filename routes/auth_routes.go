package routes

import (
	"github.com/mhoffmann-dev/GigSphere/controllers"
	"github.com/mhoffmann-dev/GigSphere/middleware"
	"github.com/gin-gonic/gin"
)

// initAuthRoutes initializes registration, login and logout routes
func initAuthRoutes(router *gin.RouterGroup) {
	router.POST("/registration", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", controllers.LogoutUser)
	}
}

// initProfileRoutes initializes profile routes
func initProfileRoutes(router *gin.RouterGroup) {
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile/:id", controllers.GetProfile)
		protected.PATCH("/profile/:id", controllers.UpdateProfile)
		protected.GET("/profiles/business", controllers.ListBusinessProfiles)
		protected.GET("/profiles/customer", controllers.ListCustomerProfiles)
	}
}
