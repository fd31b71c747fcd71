package controllers

import (
	"time"

	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
)

// ProfileDetail is the full response shape for a single profile, including
// the account email and timestamps. List endpoints use the slimmer
// BusinessProfileSummary / CustomerProfileSummary shapes instead.
type ProfileDetail struct {
	UserID       uint      `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	File         string    `json:"file"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	Type         string    `json:"type"`
	IsGuest      bool      `json:"is_guest"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileUpdateRequest represents the profile patch body. Pointer fields
// distinguish "absent" from "set to empty".
type ProfileUpdateRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	File         *string `json:"file"`
	Location     *string `json:"location"`
	Tel          *string `json:"tel"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours"`
	Email        *string `json:"email"`
}

func profileDetailResponse(profile *models.Profile, user *models.User) ProfileDetail {
	return ProfileDetail{
		UserID:       user.ID,
		Username:     user.Username,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		File:         profile.File,
		Location:     profile.Location,
		Tel:          profile.Tel,
		Description:  profile.Description,
		WorkingHours: profile.WorkingHours,
		Type:         user.Type,
		IsGuest:      user.IsGuest,
		Email:        user.Email,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}

// GetProfile retrieves a profile by user ID
func GetProfile(c *gin.Context) {
	utils.LogInfo("GetProfile called")

	userID := c.Param("id")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.LogError("Profile user not found: %v", err)
		utils.NotFound(c, "Profile not found")
		return
	}

	var profile models.Profile
	if err := config.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		utils.LogError("Profile not found for user %d: %v", user.ID, err)
		utils.NotFound(c, "Profile not found")
		return
	}

	utils.Success(c, "Profile retrieved successfully", profileDetailResponse(&profile, &user))
}

// UpdateProfile updates the caller's own profile
func UpdateProfile(c *gin.Context) {
	utils.LogInfo("UpdateProfile called")

	currentUser := c.MustGet("user").(models.User)

	userID := c.Param("id")
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.LogError("Profile user not found: %v", err)
		utils.NotFound(c, "Profile not found")
		return
	}

	if user.ID != currentUser.ID {
		utils.LogError("User %d attempted to update profile of user %d", currentUser.ID, user.ID)
		utils.Forbidden(c, "You can only update your own profile")
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Profile update failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	var profile models.Profile
	if err := config.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		utils.LogError("Profile not found for user %d: %v", user.ID, err)
		utils.NotFound(c, "Profile not found")
		return
	}

	if req.Email != nil {
		newEmail := utils.SanitizeString(*req.Email)
		if valid, msg := utils.ValidateEmail(newEmail); !valid {
			utils.BadRequest(c, "Invalid email", msg)
			return
		}
		var existing models.User
		if err := config.DB.Where("email = ? AND id <> ?", newEmail, user.ID).First(&existing).Error; err == nil {
			utils.LogError("Profile update failed - Email already in use: %s", newEmail)
			utils.BadRequest(c, "Email already in use", gin.H{"email": "This email is already in use."})
			return
		}
		user.Email = newEmail
		if err := config.DB.Save(&user).Error; err != nil {
			utils.LogError("Failed to update user email: %v", err)
			utils.InternalServerError(c, "Failed to update profile", nil)
			return
		}
	}

	// Absent fields keep their value; present-but-null fields normalize to ""
	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&profile.FirstName, req.FirstName)
	applyString(&profile.LastName, req.LastName)
	applyString(&profile.File, req.File)
	applyString(&profile.Location, req.Location)
	applyString(&profile.Tel, req.Tel)
	applyString(&profile.Description, req.Description)
	applyString(&profile.WorkingHours, req.WorkingHours)

	if err := config.DB.Save(&profile).Error; err != nil {
		utils.LogError("Failed to update profile: %v", err)
		utils.InternalServerError(c, "Failed to update profile", nil)
		return
	}

	utils.LogInfo("Profile updated successfully for user %d", user.ID)
	utils.Success(c, "Profile updated successfully", profileDetailResponse(&profile, &user))
}
