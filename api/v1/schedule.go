package v1

import (
	"net/http"
	"time"

	"github.com/baytrack/baytrack/dto"
	"github.com/baytrack/baytrack/models"
	"github.com/baytrack/baytrack/services"
	"github.com/baytrack/baytrack/utils"
	"github.com/gin-gonic/gin"
)

var scheduleService = services.NewScheduleService()

// GetScheduleLayout godoc
// @Summary Get the computed schedule layout
// @Description Run a layout pass over all bars and bays and return the bars
// annotated with phase widths and capacity expansion factors. The bayId,
// from and to query parameters narrow the response; contention is always
// computed against the full schedule.
// @Tags schedule
// @Produce json
// @Param bayId query string false "Only bars in this bay"
// @Param from query string false "Only bars ending on or after this date"
// @Param to query string false "Only bars starting on or before this date"
// @Success 200 {object} dto.LayoutResponse
// @Router /schedule/layout [get]
func GetScheduleLayout(c *gin.Context) {
	filter := dto.LayoutFilter{
		BayID: c.Query("bayId"),
		From:  utils.ParseDateQuery(c, "from"),
		To:    utils.ParseDateQuery(c, "to"),
	}

	layout, err := scheduleService.ComputeLayout(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute schedule layout: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   layout,
	})
}

// ListScheduleBars returns stored schedule bars, optionally for one project
func ListScheduleBars(c *gin.Context) {
	bars, err := scheduleService.ListBars(c.Query("projectId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve schedule bars: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   bars,
	})
}

// GetScheduleBar returns a single schedule bar
func GetScheduleBar(c *gin.Context) {
	barID := c.Param("id")
	if barID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Schedule bar ID is required"})
		return
	}

	bar, err := scheduleService.GetBarDetail(barID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Schedule bar not found: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   bar,
	})
}

// CreateScheduleBar places a project on a bay's timeline
func CreateScheduleBar(c *gin.Context) {
	var barDTO dto.CreateScheduleBarRequest
	if err := c.ShouldBindJSON(&barDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	now := time.Now()
	bar := models.ScheduleBar{
		ProjectID:            barDTO.ProjectID,
		BayID:                barDTO.BayID,
		StartDate:            barDTO.StartDate,
		EndDate:              barDTO.EndDate,
		TotalHours:           barDTO.TotalHours,
		Width:                barDTO.Width,
		FabPercentage:        barDTO.FabPercentage,
		PaintPercentage:      barDTO.PaintPercentage,
		ProductionPercentage: barDTO.ProductionPercentage,
		ItPercentage:         barDTO.ItPercentage,
		NtcPercentage:        barDTO.NtcPercentage,
		QcPercentage:         barDTO.QcPercentage,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	newBar, err := scheduleService.CreateBar(bar)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create schedule bar: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   newBar,
	})
}

// UpdateScheduleBar moves or resizes a schedule bar
func UpdateScheduleBar(c *gin.Context) {
	barID := c.Param("id")
	if barID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Schedule bar ID is required"})
		return
	}

	var barDTO dto.UpdateScheduleBarRequest
	if err := c.ShouldBindJSON(&barDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	bar := models.ScheduleBar{
		ID:                   barID,
		BayID:                barDTO.BayID,
		StartDate:            barDTO.StartDate,
		EndDate:              barDTO.EndDate,
		TotalHours:           barDTO.TotalHours,
		Width:                barDTO.Width,
		FabPercentage:        barDTO.FabPercentage,
		PaintPercentage:      barDTO.PaintPercentage,
		ProductionPercentage: barDTO.ProductionPercentage,
		ItPercentage:         barDTO.ItPercentage,
		NtcPercentage:        barDTO.NtcPercentage,
		QcPercentage:         barDTO.QcPercentage,
	}

	updatedBar, err := scheduleService.UpdateBar(bar)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update schedule bar: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   updatedBar,
	})
}

// DeleteScheduleBar removes a schedule bar
func DeleteScheduleBar(c *gin.Context) {
	barID := c.Param("id")
	if barID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Schedule bar ID is required"})
		return
	}

	if err := scheduleService.DeleteBar(barID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete schedule bar: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Schedule bar deleted successfully",
	})
}
