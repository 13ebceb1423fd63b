package main

import (
	"log"
	"os"

	v1 "github.com/baytrack/baytrack/api/v1"
	"github.com/baytrack/baytrack/config"
	"github.com/baytrack/baytrack/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize database connection and run migrations
	database.Initialize()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("🚀 BayTrack API starting on port %s", port)
	log.Printf("📐 Schedule layout: %s policy, max expansion %v",
		config.GetEnv("SCHEDULE_CAPACITY_POLICY", "representative"),
		config.GetEnvFloat("SCHEDULE_MAX_EXPANSION", 10))
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
