package models

import (
	"time"
	"gorm.io/gorm"
)

// MilestoneStatus represents the billing state of a milestone
type MilestoneStatus string

const (
	MilestoneStatusUpcoming MilestoneStatus = "upcoming"
	MilestoneStatusInvoiced MilestoneStatus = "invoiced"
	MilestoneStatusPaid     MilestoneStatus = "paid"
)

// BillingMilestone represents a billing event tied to a project
type BillingMilestone struct {
	ID            string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID     string          `json:"projectId" gorm:"type:uuid;not null;index"`
	Name          string          `json:"name" gorm:"not null"`
	Amount        float64         `json:"amount" gorm:"not null"`
	Percentage    *float64        `json:"percentage" gorm:"default:null"` // share of the contract value, optional
	Status        MilestoneStatus `json:"status" gorm:"type:varchar(20);default:'upcoming'"`
	TargetDate    *time.Time      `json:"targetDate" gorm:"default:null"`
	InvoicedDate  *time.Time      `json:"invoicedDate" gorm:"default:null"`
	PaidDate      *time.Time      `json:"paidDate" gorm:"default:null"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for BillingMilestone model
func (BillingMilestone) TableName() string {
	return "billing_milestones"
}
