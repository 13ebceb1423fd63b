package v1

import (
	"net/http"
	"time"

	"github.com/baytrack/baytrack/dto"
	"github.com/baytrack/baytrack/models"
	"github.com/baytrack/baytrack/services"
	"github.com/gin-gonic/gin"
)

var bayService = services.NewBayService()

// ListBays returns the full bay roster
func ListBays(c *gin.Context) {
	bays, err := bayService.ListBays()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve bays: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   bays,
	})
}

// GetBay returns a single bay
func GetBay(c *gin.Context) {
	bayID := c.Param("id")
	if bayID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Bay ID is required"})
		return
	}

	bay, err := bayService.GetBayDetail(bayID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Bay not found: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   bay,
	})
}

// CreateBay adds a bay to the roster (admin only)
func CreateBay(c *gin.Context) {
	var bayDTO dto.CreateBayRequest
	if err := c.ShouldBindJSON(&bayDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	now := time.Now()
	bay := models.Bay{
		Name:                 bayDTO.Name,
		Team:                 bayDTO.Team,
		AssemblyStaffCount:   bayDTO.AssemblyStaffCount,
		ElectricalStaffCount: bayDTO.ElectricalStaffCount,
		HoursPerWeek:         bayDTO.HoursPerWeek,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	newBay, err := bayService.CreateBay(bay)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create bay: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   newBay,
	})
}

// UpdateBay modifies a bay's team assignment or staffing (admin only)
func UpdateBay(c *gin.Context) {
	bayID := c.Param("id")
	if bayID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Bay ID is required"})
		return
	}

	var bayDTO dto.UpdateBayRequest
	if err := c.ShouldBindJSON(&bayDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	bay := models.Bay{
		ID:                   bayID,
		Name:                 bayDTO.Name,
		Team:                 bayDTO.Team,
		AssemblyStaffCount:   bayDTO.AssemblyStaffCount,
		ElectricalStaffCount: bayDTO.ElectricalStaffCount,
		HoursPerWeek:         bayDTO.HoursPerWeek,
	}

	updatedBay, err := bayService.UpdateBay(bay)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update bay: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   updatedBay,
	})
}

// DeleteBay removes a bay from the roster (admin only)
func DeleteBay(c *gin.Context) {
	bayID := c.Param("id")
	if bayID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Bay ID is required"})
		return
	}

	if err := bayService.DeleteBay(bayID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete bay: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Bay deleted successfully",
	})
}
