package v1

import (
	"net/http"

	"github.com/baytrack/baytrack/dto"
	"github.com/baytrack/baytrack/models"
	"github.com/baytrack/baytrack/services"
	"github.com/gin-gonic/gin"
)

var userService = services.NewUserService()

// ListUsers returns all user accounts (admin only)
func ListUsers(c *gin.Context) {
	users, err := userService.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve users: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   users,
	})
}

// CreateUser provisions an account with an assigned role (admin only)
func CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	user, generatedPassword, err := userService.CreateUser(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to create user: " + err.Error(),
		})
		return
	}

	response := gin.H{
		"status": "success",
		"data":   user,
	}
	// The generated password is shown exactly once
	if generatedPassword != "" {
		response["generatedPassword"] = generatedPassword
	}

	c.JSON(http.StatusCreated, response)
}

// UpdateUserRole changes a user's role (admin only)
func UpdateUserRole(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "User ID is required"})
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	user, err := userService.UpdateUserRole(userID, models.Role(req.Role))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to update user role: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   user,
	})
}

// DeleteUser removes a user account (admin only)
func DeleteUser(c *gin.Context) {
	requestingUserID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	userID := c.Param("id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "User ID is required"})
		return
	}

	if err := userService.DeleteUser(userID, requestingUserID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
	})
}
