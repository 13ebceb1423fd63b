package dto

import (
	"time"

	"github.com/baytrack/baytrack/models"
)

// ProjectFilter represents filter criteria for projects
type ProjectFilter struct {
	UserID    string
	Search    string
	Status    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
	IsAdmin   bool
}

// ProjectListResponse represents paginated project list response
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name          string     `json:"name" binding:"required"`
	ProjectNumber string     `json:"projectNumber" binding:"required"`
	Client        string     `json:"client"`
	Description   string     `json:"description"`
	TotalHours    *float64   `json:"totalHours"`
	DeliveryDate  *time.Time `json:"deliveryDate"`
}

// UpdateProjectRequest represents the request payload for updating an existing project
type UpdateProjectRequest struct {
	Name         string     `json:"name" binding:"required"`
	Client       string     `json:"client"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	TotalHours   *float64   `json:"totalHours"`
	DeliveryDate *time.Time `json:"deliveryDate"`
}

// ProjectStatsResponse represents project statistics for dashboard view
type ProjectStatsResponse struct {
	Project struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		ProjectNumber string `json:"projectNumber"`
		Client        string `json:"client"`
		Status        string `json:"status"`
		CreatedAt     string `json:"createdAt"`
	} `json:"project"`

	Schedule struct {
		Bars          int        `json:"bars"`
		EarliestStart *time.Time `json:"earliestStart"`
		LatestEnd     *time.Time `json:"latestEnd"`
		TotalHours    float64    `json:"totalHours"`
	} `json:"schedule"`

	Billing struct {
		Milestones     int     `json:"milestones"`
		TotalAmount    float64 `json:"totalAmount"`
		InvoicedTotal  float64 `json:"invoicedTotal"`
		PaidTotal      float64 `json:"paidTotal"`
		PaidPercentage float64 `json:"paidPercentage"`
	} `json:"billing"`
}
