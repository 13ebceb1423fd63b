package models

import (
	"time"
	"gorm.io/gorm"
)

// ScheduleBar represents a project's placement on a bay's timeline.
//
// The six phase percentages describe how the project's schedule splits into
// manufacturing phases. They are expected to sum to roughly 100 but that is
// not enforced; the layout engine tolerates over/under-100 totals.
//
// The derived widths and the capacity expansion factor are transient
// view-model fields. They are recomputed on every layout pass and are never
// written back to the database.
type ScheduleBar struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID  string    `json:"projectId" gorm:"type:uuid;not null;index"`
	BayID      string    `json:"bayId" gorm:"type:uuid;not null;index"`
	StartDate  time.Time `json:"startDate" gorm:"not null"`
	EndDate    time.Time `json:"endDate" gorm:"not null"`
	TotalHours *float64  `json:"totalHours" gorm:"default:null"` // estimated labor hours for the whole project
	Width      float64   `json:"width" gorm:"default:0"`         // caller-computed visual total width, units-agnostic

	// Phase split, percent of the bar's schedule
	FabPercentage        float64 `json:"fabPercentage" gorm:"default:0"`
	PaintPercentage      float64 `json:"paintPercentage" gorm:"default:0"`
	ProductionPercentage float64 `json:"productionPercentage" gorm:"default:0"`
	ItPercentage         float64 `json:"itPercentage" gorm:"default:0"`
	NtcPercentage        float64 `json:"ntcPercentage" gorm:"default:0"`
	QcPercentage         float64 `json:"qcPercentage" gorm:"default:0"`

	// Derived by the layout engine, not persisted
	FabWidth                float64 `json:"fabWidth" gorm:"-"`
	PaintWidth              float64 `json:"paintWidth" gorm:"-"`
	ProductionWidth         float64 `json:"productionWidth" gorm:"-"`
	ItWidth                 float64 `json:"itWidth" gorm:"-"`
	NtcWidth                float64 `json:"ntcWidth" gorm:"-"`
	QcWidth                 float64 `json:"qcWidth" gorm:"-"`
	CapacityExpansionFactor float64 `json:"capacityExpansionFactor" gorm:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Bay     Bay     `json:"bay,omitempty" gorm:"foreignKey:BayID"`
}

// TableName sets the table name for ScheduleBar model
func (ScheduleBar) TableName() string {
	return "schedule_bars"
}
