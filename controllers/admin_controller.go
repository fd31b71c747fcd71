package controllers

import (
	"os"

	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
)

// CreateDefaultAdmin seeds an admin account from environment variables so a
// fresh deployment always has one actor able to delete orders.
func CreateDefaultAdmin() error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@gigsphere.local"
	}

	hashedPassword, err := utils.HashPassword(os.Getenv("ADMIN_PASSWORD"))
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Type:     models.UserTypeCustomer,
		IsAdmin:  true,
		IsActive: true,
	}

	return config.DB.FirstOrCreate(&admin, models.User{Username: admin.Username}).Error
}
