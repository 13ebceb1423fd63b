package dto

import "time"

// CreateMilestoneRequest represents the request payload for adding a billing
// milestone to a project
type CreateMilestoneRequest struct {
	ProjectID  string     `json:"projectId" binding:"required"`
	Name       string     `json:"name" binding:"required"`
	Amount     float64    `json:"amount" binding:"required"`
	Percentage *float64   `json:"percentage"`
	TargetDate *time.Time `json:"targetDate"`
}

// UpdateMilestoneRequest represents the request payload for updating a milestone
type UpdateMilestoneRequest struct {
	Name         string     `json:"name" binding:"required"`
	Amount       float64    `json:"amount" binding:"required"`
	Percentage   *float64   `json:"percentage"`
	Status       string     `json:"status"`
	TargetDate   *time.Time `json:"targetDate"`
	InvoicedDate *time.Time `json:"invoicedDate"`
	PaidDate     *time.Time `json:"paidDate"`
}

// BillingSummaryResponse represents billing totals for a project
type BillingSummaryResponse struct {
	ProjectID     string  `json:"projectId"`
	Milestones    int     `json:"milestones"`
	TotalAmount   float64 `json:"totalAmount"`
	UpcomingTotal float64 `json:"upcomingTotal"`
	InvoicedTotal float64 `json:"invoicedTotal"`
	PaidTotal     float64 `json:"paidTotal"`
}
