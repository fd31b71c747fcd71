package controllers

import (
	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
)

// BusinessProfileSummary is the list shape for business profiles
type BusinessProfileSummary struct {
	UserID       uint   `json:"user"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	File         string `json:"file"`
	Location     string `json:"location"`
	Tel          string `json:"tel"`
	Description  string `json:"description"`
	WorkingHours string `json:"working_hours"`
	Type         string `json:"type"`
}

// CustomerProfileSummary is the list shape for customer profiles
type CustomerProfileSummary struct {
	UserID    uint   `json:"user"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	File      string `json:"file"`
	Type      string `json:"type"`
}

// ListBusinessProfiles lists all profiles belonging to business users
func ListBusinessProfiles(c *gin.Context) {
	utils.LogInfo("ListBusinessProfiles called")

	users, profiles, ok := profilesByType(c, models.UserTypeBusiness)
	if !ok {
		return
	}

	summaries := make([]BusinessProfileSummary, 0, len(profiles))
	for i := range profiles {
		summaries = append(summaries, BusinessProfileSummary{
			UserID:       users[i].ID,
			Username:     users[i].Username,
			FirstName:    profiles[i].FirstName,
			LastName:     profiles[i].LastName,
			File:         profiles[i].File,
			Location:     profiles[i].Location,
			Tel:          profiles[i].Tel,
			Description:  profiles[i].Description,
			WorkingHours: profiles[i].WorkingHours,
			Type:         users[i].Type,
		})
	}

	utils.Success(c, "Business profiles retrieved successfully", summaries)
}

// ListCustomerProfiles lists all profiles belonging to customer users
func ListCustomerProfiles(c *gin.Context) {
	utils.LogInfo("ListCustomerProfiles called")

	users, profiles, ok := profilesByType(c, models.UserTypeCustomer)
	if !ok {
		return
	}

	summaries := make([]CustomerProfileSummary, 0, len(profiles))
	for i := range profiles {
		summaries = append(summaries, CustomerProfileSummary{
			UserID:    users[i].ID,
			Username:  users[i].Username,
			FirstName: profiles[i].FirstName,
			LastName:  profiles[i].LastName,
			File:      profiles[i].File,
			Type:      users[i].Type,
		})
	}

	utils.Success(c, "Customer profiles retrieved successfully", summaries)
}

// profilesByType loads user/profile pairs for every user of the given type.
// Users without a profile row are skipped.
func profilesByType(c *gin.Context, userType string) ([]models.User, []models.Profile, bool) {
	var users []models.User
	if err := config.DB.Where("type = ?", userType).Order("id").Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch %s users: %v", userType, err)
		utils.InternalServerError(c, "Failed to fetch profiles", nil)
		return nil, nil, false
	}

	pairedUsers := make([]models.User, 0, len(users))
	profiles := make([]models.Profile, 0, len(users))
	for _, user := range users {
		var profile models.Profile
		if err := config.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
			continue
		}
		pairedUsers = append(pairedUsers, user)
		profiles = append(profiles, profile)
	}

	return pairedUsers, profiles, true
}
