package services

import (
	"testing"
	"time"

	"github.com/baytrack/baytrack/models"
	"github.com/stretchr/testify/assert"
)

func TestScheduleCSVRow(t *testing.T) {
	hours := 1000.0
	bar := models.ScheduleBar{
		ID:                      "bar-1",
		ProjectID:               "p1",
		BayID:                   "b1",
		StartDate:               time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:                 time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC),
		TotalHours:              &hours,
		Width:                   500,
		FabWidth:                75,
		PaintWidth:              50,
		ProductionWidth:         1500,
		ItWidth:                 25,
		NtcWidth:                25,
		QcWidth:                 25,
		CapacityExpansionFactor: 5,
	}

	row := scheduleCSVRow(bar,
		map[string]string{"p1": "Line 7 Retrofit"},
		map[string]string{"b1": "Bay 1"})

	assert.Equal(t, []string{
		"Line 7 Retrofit", "Bay 1", "2026-03-02", "2026-04-13",
		"1000.0", "500.0",
		"75.00", "50.00", "1500.00", "25.00", "25.00", "25.00",
		"5.00",
	}, row)
}

func TestScheduleCSVRowMissingHours(t *testing.T) {
	bar := models.ScheduleBar{
		ProjectID: "p1",
		BayID:     "b1",
		StartDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
	}

	row := scheduleCSVRow(bar, map[string]string{}, map[string]string{})
	assert.Equal(t, "", row[4]) // totalHours column stays blank
}
