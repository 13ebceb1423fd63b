package models

import (
	"time"
	"gorm.io/gorm"
)

// Bay represents a physical production slot on the shop floor.
// Several bays may share the same team name, meaning the staff counts
// describe one pooled crew spread across multiple bay rows.
type Bay struct {
	ID                   string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name                 string         `json:"name" gorm:"not null"`
	Team                 *string        `json:"team" gorm:"default:null;index"`
	AssemblyStaffCount   *int           `json:"assemblyStaffCount" gorm:"default:null"`
	ElectricalStaffCount *int           `json:"electricalStaffCount" gorm:"default:null"`
	HoursPerWeek         *float64       `json:"hoursPerWeek" gorm:"default:null"` // standard hours per staff member per week
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
	DeletedAt            gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	ScheduleBars []ScheduleBar `json:"scheduleBars,omitempty" gorm:"foreignKey:BayID"`
}

// TableName sets the table name for Bay model
func (Bay) TableName() string {
	return "bays"
}
