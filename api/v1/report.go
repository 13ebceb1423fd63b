package v1

import (
	"net/http"

	"github.com/baytrack/baytrack/dto"
	"github.com/baytrack/baytrack/services"
	"github.com/baytrack/baytrack/utils"
	"github.com/gin-gonic/gin"
)

var reportService = services.NewReportService()

// ExportScheduleCSV streams the computed schedule layout as a CSV file
func ExportScheduleCSV(c *gin.Context) {
	filter := dto.LayoutFilter{
		BayID: c.Query("bayId"),
		From:  utils.ParseDateQuery(c, "from"),
		To:    utils.ParseDateQuery(c, "to"),
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="schedule.csv"`)

	if err := reportService.WriteScheduleCSV(c.Writer, filter); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to export schedule: " + err.Error(),
		})
		return
	}
}
