package main

import (
	"log"

	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/controllers"
	"github.com/mhoffmann-dev/GigSphere/routes"
	"github.com/mhoffmann-dev/GigSphere/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Create default admin
	if err := controllers.CreateDefaultAdmin(); err != nil {
		utils.LogError("Failed to create default admin: %v", err)
		log.Fatal("Failed to create default admin:", err)
	}

	// Set up router (includes the middleware chain)
	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
