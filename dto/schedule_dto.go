package dto

import (
	"time"

	"github.com/baytrack/baytrack/models"
)

// CreateScheduleBarRequest represents the request payload for placing a
// project on a bay's timeline
type CreateScheduleBarRequest struct {
	ProjectID            string    `json:"projectId" binding:"required"`
	BayID                string    `json:"bayId" binding:"required"`
	StartDate            time.Time `json:"startDate" binding:"required"`
	EndDate              time.Time `json:"endDate" binding:"required"`
	TotalHours           *float64  `json:"totalHours"`
	Width                float64   `json:"width"`
	FabPercentage        float64   `json:"fabPercentage"`
	PaintPercentage      float64   `json:"paintPercentage"`
	ProductionPercentage float64   `json:"productionPercentage"`
	ItPercentage         float64   `json:"itPercentage"`
	NtcPercentage        float64   `json:"ntcPercentage"`
	QcPercentage         float64   `json:"qcPercentage"`
}

// UpdateScheduleBarRequest represents the request payload for moving or
// resizing a schedule bar
type UpdateScheduleBarRequest struct {
	BayID                string    `json:"bayId" binding:"required"`
	StartDate            time.Time `json:"startDate" binding:"required"`
	EndDate              time.Time `json:"endDate" binding:"required"`
	TotalHours           *float64  `json:"totalHours"`
	Width                float64   `json:"width"`
	FabPercentage        float64   `json:"fabPercentage"`
	PaintPercentage      float64   `json:"paintPercentage"`
	ProductionPercentage float64   `json:"productionPercentage"`
	ItPercentage         float64   `json:"itPercentage"`
	NtcPercentage        float64   `json:"ntcPercentage"`
	QcPercentage         float64   `json:"qcPercentage"`
}

// LayoutFilter narrows the bars returned from a layout pass. Contention is
// always computed against the full bar set before the filter applies.
type LayoutFilter struct {
	BayID string
	From  *time.Time
	To    *time.Time
}

// LayoutResponse represents a computed schedule layout
type LayoutResponse struct {
	Bars         []models.ScheduleBar `json:"bars"`
	Count        int                  `json:"count"`
	MaxExpansion float64              `json:"maxExpansion"`
}
