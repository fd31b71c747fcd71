package middleware

import (
	"net/http"
	"strings"

	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and loads the user into context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		if tokenString == authHeader {
			utils.LogError("Invalid Bearer token format")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		if utils.IsTokenBlacklisted(config.DB, tokenString) {
			utils.LogError("Blacklisted token used")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		userID, _, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		utils.LogDebug("Authenticating user ID: %d", userID)

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			utils.LogError("User not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		if !user.IsActive {
			utils.LogError("Inactive user attempted access: %d", userID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("token", tokenString)
		c.Next()
	}
}

// BusinessMiddleware restricts access to business users
func BusinessMiddleware() gin.HandlerFunc {
	return requireType(models.UserTypeBusiness, "Business account required")
}

// CustomerMiddleware restricts access to customer users
func CustomerMiddleware() gin.HandlerFunc {
	return requireType(models.UserTypeCustomer, "Customer account required")
}

func requireType(userType, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
			c.Abort()
			return
		}

		userModel, ok := user.(models.User)
		if !ok {
			utils.LogError("Invalid user type in context")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type"})
			c.Abort()
			return
		}

		if userModel.Type != userType {
			utils.LogError("User %d attempted access requiring type %s", userModel.ID, userType)
			c.JSON(http.StatusForbidden, gin.H{"error": message})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminMiddleware restricts access to admin users
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
			c.Abort()
			return
		}

		userModel, ok := user.(models.User)
		if !ok {
			utils.LogError("Invalid user type in context")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type"})
			c.Abort()
			return
		}

		if !userModel.IsAdmin {
			utils.LogError("Non-admin user attempted admin access: %d", userModel.ID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
