package v1

import (
	"net/http"
	"time"

	"github.com/baytrack/baytrack/dto"
	"github.com/baytrack/baytrack/models"
	"github.com/baytrack/baytrack/services"
	"github.com/gin-gonic/gin"
)

var billingService = services.NewBillingService()

// ListMilestones returns the billing milestones of a project
func ListMilestones(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == string(models.RoleAdmin)

	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	milestones, err := billingService.ListMilestones(projectID, userID.(string), isAdmin)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to retrieve milestones: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   milestones,
	})
}

// GetBillingSummary returns billing totals for a project
func GetBillingSummary(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == string(models.RoleAdmin)

	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	summary, err := billingService.GetSummary(projectID, userID.(string), isAdmin)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to retrieve billing summary: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   summary,
	})
}

// CreateMilestone adds a billing milestone to a project
func CreateMilestone(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == string(models.RoleAdmin)

	var milestoneDTO dto.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&milestoneDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	now := time.Now()
	milestone := models.BillingMilestone{
		ProjectID:  milestoneDTO.ProjectID,
		Name:       milestoneDTO.Name,
		Amount:     milestoneDTO.Amount,
		Percentage: milestoneDTO.Percentage,
		TargetDate: milestoneDTO.TargetDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	newMilestone, err := billingService.CreateMilestone(milestone, userID.(string), isAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create milestone: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   newMilestone,
	})
}

// UpdateMilestone modifies a billing milestone
func UpdateMilestone(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == string(models.RoleAdmin)

	milestoneID := c.Param("id")
	if milestoneID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Milestone ID is required"})
		return
	}

	var milestoneDTO dto.UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&milestoneDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	milestone := models.BillingMilestone{
		ID:           milestoneID,
		Name:         milestoneDTO.Name,
		Amount:       milestoneDTO.Amount,
		Percentage:   milestoneDTO.Percentage,
		Status:       models.MilestoneStatus(milestoneDTO.Status),
		TargetDate:   milestoneDTO.TargetDate,
		InvoicedDate: milestoneDTO.InvoicedDate,
		PaidDate:     milestoneDTO.PaidDate,
	}

	updatedMilestone, err := billingService.UpdateMilestone(milestone, userID.(string), isAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update milestone: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   updatedMilestone,
	})
}

// DeleteMilestone removes a billing milestone
func DeleteMilestone(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == string(models.RoleAdmin)

	milestoneID := c.Param("id")
	if milestoneID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Milestone ID is required"})
		return
	}

	if err := billingService.DeleteMilestone(milestoneID, userID.(string), isAdmin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete milestone: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Milestone deleted successfully",
	})
}
