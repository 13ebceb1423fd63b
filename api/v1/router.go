package v1

import (
	"github.com/baytrack/baytrack/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", middleware.EditorMiddleware(), CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", middleware.EditorMiddleware(), UpdateProject)
		projectGroup.DELETE("/:id", middleware.EditorMiddleware(), DeleteProject)
		projectGroup.GET("/:id/stats", GetProjectStats)
		projectGroup.GET("/:id/billing", ListMilestones)
		projectGroup.GET("/:id/billing/summary", GetBillingSummary)
	}

	// Bay roster - all authenticated users read, admins write
	bayGroup := router.Group("/bays")
	bayGroup.Use(middleware.AuthMiddleware())
	{
		bayGroup.GET("", ListBays)
		bayGroup.GET("/:id", GetBay)
		bayGroup.POST("", middleware.AdminMiddleware(), CreateBay)
		bayGroup.PUT("/:id", middleware.AdminMiddleware(), UpdateBay)
		bayGroup.DELETE("/:id", middleware.AdminMiddleware(), DeleteBay)
	}

	// Schedule bars and the computed layout
	scheduleGroup := router.Group("/schedule")
	scheduleGroup.Use(middleware.AuthMiddleware())
	{
		scheduleGroup.GET("/layout", GetScheduleLayout)
		scheduleGroup.GET("/bars", ListScheduleBars)
		scheduleGroup.GET("/bars/:id", GetScheduleBar)
		scheduleGroup.POST("/bars", middleware.EditorMiddleware(), CreateScheduleBar)
		scheduleGroup.PUT("/bars/:id", middleware.EditorMiddleware(), UpdateScheduleBar)
		scheduleGroup.DELETE("/bars/:id", middleware.EditorMiddleware(), DeleteScheduleBar)
	}

	// Billing milestone writes
	billingGroup := router.Group("/billing")
	billingGroup.Use(middleware.AuthMiddleware())
	{
		billingGroup.POST("", middleware.EditorMiddleware(), CreateMilestone)
		billingGroup.PUT("/:id", middleware.EditorMiddleware(), UpdateMilestone)
		billingGroup.DELETE("/:id", middleware.EditorMiddleware(), DeleteMilestone)
	}

	// Reports
	reportGroup := router.Group("/reports")
	reportGroup.Use(middleware.AuthMiddleware())
	{
		reportGroup.GET("/schedule.csv", ExportScheduleCSV)
	}

	// Admin endpoints - protected by AdminMiddleware
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/users", ListUsers)
		adminGroup.POST("/users", CreateUser)
		adminGroup.PUT("/users/:id/role", UpdateUserRole)
		adminGroup.DELETE("/users/:id", DeleteUser)
	}
}
