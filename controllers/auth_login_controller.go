package controllers

import (
	"time"

	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser handles user login
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid username or password", err.Error())
		return
	}

	req.Username = utils.SanitizeString(req.Username)

	var user models.User
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.LogError("Login attempt failed - User not found: %s", req.Username)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login attempt failed - Invalid password for user: %s", req.Username)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !user.IsActive {
		utils.LogError("Login attempt failed - Deactivated account: %s", req.Username)
		utils.Forbidden(c, "Account is deactivated")
		return
	}

	user.LastLoginAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to update last login time for user: %s", req.Username)
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user: %s", req.Username)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User logged in successfully: %s", req.Username)
	utils.Success(c, "Login successful", gin.H{
		"token":    token,
		"username": user.Username,
		"email":    user.Email,
		"user_id":  user.ID,
		"type":     user.Type,
		"is_guest": user.IsGuest,
	})
}

// LogoutUser invalidates the presented token by blacklisting it
func LogoutUser(c *gin.Context) {
	tokenString, exists := c.Get("token")
	if !exists {
		utils.LogError("Logout failed - Token not found in context")
		utils.Unauthorized(c, "Please login for access")
		return
	}

	token := tokenString.(string)
	_, expiresAt, err := utils.ValidateToken(token)
	if err != nil {
		utils.LogError("Logout failed - Invalid token: %v", err)
		utils.Unauthorized(c, "Please login for access")
		return
	}
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(time.Hour * 24)
	}

	if err := utils.BlacklistToken(config.DB, token, expiresAt); err != nil {
		if !utils.IsDuplicateKeyError(err) {
			utils.LogError("Failed to blacklist token: %v", err)
			utils.InternalServerError(c, "Failed to logout", nil)
			return
		}
	}

	utils.LogInfo("User logged out successfully")
	utils.Success(c, "Logout successful", nil)
}
