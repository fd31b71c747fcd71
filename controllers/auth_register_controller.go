package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeated_password"`
	Type             string `json:"type"`
	IsGuest          bool   `json:"is_guest"`
}

// RegisterUser handles user registration, creating the account, its profile
// and an auth token in one request. Guest registrations get a generated
// username and email and no usable password.
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "Please check your input data and ensure all required fields are provided correctly.")
		return
	}

	if req.IsGuest {
		registerGuest(c, req)
		return
	}

	utils.LogInfo("Registration attempt for email: %s, username: %s", req.Email, req.Username)

	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.LogError("Registration attempt failed - Invalid username: %s", req.Username)
		utils.BadRequest(c, "Invalid username", msg)
		return
	}

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.LogError("Registration attempt failed - Invalid email: %s", req.Email)
		utils.BadRequest(c, "Invalid email", msg)
		return
	}

	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.LogError("Registration attempt failed - Invalid password for email: %s", req.Email)
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	if req.Password != req.RepeatedPassword {
		utils.LogError("Registration attempt failed - Passwords do not match for email: %s", req.Email)
		utils.BadRequest(c, "Passwords do not match", gin.H{"repeated_password": "Password and repeated password must be the same."})
		return
	}

	if req.Type != models.UserTypeBusiness && req.Type != models.UserTypeCustomer {
		utils.LogError("Registration attempt failed - Invalid account type: %s", req.Type)
		utils.BadRequest(c, "Invalid account type", gin.H{"type": "Type must be either 'business' or 'customer'."})
		return
	}

	var existingUser models.User
	if err := config.DB.Where("username = ?", req.Username).First(&existingUser).Error; err == nil {
		utils.LogError("Registration attempt failed - Username already exists: %s", req.Username)
		utils.Conflict(c, "Username already exists", "The username you've chosen is already taken. Please choose a different username.")
		return
	}
	if err := config.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		utils.LogError("Registration attempt failed - Email already exists: %s", req.Email)
		utils.Conflict(c, "Email already exists", "An account with this email address already exists.")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Type:     req.Type,
		IsActive: true,
	}

	if err := createUserWithProfile(&user); err != nil {
		utils.LogError("Failed to create user: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	issueRegistrationResponse(c, &user)
}

// registerGuest creates a throwaway guest account with a generated identity
func registerGuest(c *gin.Context, req RegisterRequest) {
	userType := req.Type
	if userType != models.UserTypeBusiness && userType != models.UserTypeCustomer {
		userType = models.UserTypeCustomer
	}

	guestNumber := nextGuestNumber()
	user := models.User{
		Username: fmt.Sprintf("Guest_%d", guestNumber),
		Email:    fmt.Sprintf("guest_%d@example.com", guestNumber),
		Type:     userType,
		IsGuest:  true,
		IsActive: true,
	}

	if err := createUserWithProfile(&user); err != nil {
		utils.LogError("Failed to create guest user: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	utils.LogInfo("Guest account created: %s", user.Username)
	issueRegistrationResponse(c, &user)
}

// nextGuestNumber continues the Guest_N sequence from the latest guest account
func nextGuestNumber() int {
	var lastGuest models.User
	lastNumber := 0
	if err := config.DB.Where("is_guest = ?", true).Order("id desc").First(&lastGuest).Error; err == nil {
		parts := strings.SplitN(lastGuest.Username, "_", 2)
		if len(parts) == 2 {
			if n, err := strconv.Atoi(parts[1]); err == nil {
				lastNumber = n
			}
		}
	}
	return lastNumber + 1
}

func createUserWithProfile(user *models.User) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := models.Profile{UserID: user.ID}
		return tx.Create(&profile).Error
	})
}

func issueRegistrationResponse(c *gin.Context, user *models.User) {
	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.LogError("Failed to generate token for user: %s", user.Username)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User registered successfully: %s", user.Username)
	utils.Created(c, "Registration successful", gin.H{
		"token":    token,
		"username": user.Username,
		"email":    user.Email,
		"user_id":  user.ID,
		"type":     user.Type,
		"is_guest": user.IsGuest,
	})
}
