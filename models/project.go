package models

import (
	"time"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle state of a manufacturing project
type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project represents a manufacturing project tracked on the dashboard
type Project struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name          string         `json:"name" gorm:"not null"`
	ProjectNumber string         `json:"projectNumber" gorm:"uniqueIndex;not null"`
	Client        string         `json:"client" gorm:"default:null"`
	Description   string         `json:"description" gorm:"default:null"`
	Status        ProjectStatus  `json:"status" gorm:"type:varchar(20);default:'planned'"`
	TotalHours    *float64       `json:"totalHours" gorm:"default:null"` // estimated labor hours for the whole project
	DeliveryDate  *time.Time     `json:"deliveryDate" gorm:"default:null"`
	UserID        string         `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User              User               `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ScheduleBars      []ScheduleBar      `json:"scheduleBars,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	BillingMilestones []BillingMilestone `json:"billingMilestones,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
