package services

import (
	"fmt"

	"github.com/baytrack/baytrack/dto"
	"github.com/baytrack/baytrack/models"
	"github.com/baytrack/baytrack/repositories"
	"github.com/baytrack/baytrack/utils"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo   *repositories.ProjectRepository
	barRepo       *repositories.ScheduleBarRepository
	milestoneRepo *repositories.BillingMilestoneRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo:   repositories.NewProjectRepository(),
		barRepo:       repositories.NewScheduleBarRepository(),
		milestoneRepo: repositories.NewBillingMilestoneRepository(),
	}
}

// ListProjects retrieves projects with pagination, filtering and sorting
// Admin can see all projects, regular users only see their own
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}

	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	// Validate sort order
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at":     true,
		"updated_at":     true,
		"name":           true,
		"project_number": true,
		"delivery_date":  true,
	}

	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.UserID,
		filter.IsAdmin,
		filter.Search,
		filter.Status,
	)

	if err != nil {
		return response, err
	}

	// Calculate total pages
	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	// Build response
	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// GetProjectDetail retrieves a project by ID with its schedule and billing records
// Access control: admin can view any project, regular users only their own
func (s *ProjectService) GetProjectDetail(projectID string, userID string, isAdmin bool) (models.Project, error) {
	project, err := s.projectRepo.WithSchedule(projectID)
	if err != nil {
		return models.Project{}, err
	}

	// Access control - return error if not admin and not owner
	if !isAdmin && project.UserID != userID {
		return models.Project{}, fmt.Errorf("unauthorized: you don't have permission to access this project")
	}

	return project, nil
}

// GetProjectStats retrieves schedule and billing statistics for a project
func (s *ProjectService) GetProjectStats(projectID string, userID string, isAdmin bool) (dto.ProjectStatsResponse, error) {
	// First check access permissions
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return dto.ProjectStatsResponse{}, err
	}

	// Access control - return error if not admin and not owner
	if !isAdmin && project.UserID != userID {
		return dto.ProjectStatsResponse{}, fmt.Errorf("unauthorized: you don't have permission to access this project")
	}

	stats := dto.ProjectStatsResponse{}

	// Set project info
	stats.Project.ID = project.ID
	stats.Project.Name = project.Name
	stats.Project.ProjectNumber = project.ProjectNumber
	stats.Project.Client = project.Client
	stats.Project.Status = string(project.Status)
	stats.Project.CreatedAt = project.CreatedAt.Format("2006-01-02T15:04:05Z07:00")

	// Schedule stats
	bars, err := s.barRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.ProjectStatsResponse{}, err
	}

	stats.Schedule.Bars = len(bars)
	for _, bar := range bars {
		bar := bar
		if stats.Schedule.EarliestStart == nil || bar.StartDate.Before(*stats.Schedule.EarliestStart) {
			stats.Schedule.EarliestStart = &bar.StartDate
		}
		if stats.Schedule.LatestEnd == nil || bar.EndDate.After(*stats.Schedule.LatestEnd) {
			stats.Schedule.LatestEnd = &bar.EndDate
		}
		if bar.TotalHours != nil {
			stats.Schedule.TotalHours += *bar.TotalHours
		}
	}

	// Billing stats
	milestones, err := s.milestoneRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.ProjectStatsResponse{}, err
	}

	stats.Billing.Milestones = len(milestones)
	totalAmount, _ := s.milestoneRepo.SumByProjectID(projectID)
	invoicedTotal, _ := s.milestoneRepo.SumByProjectIDAndStatus(projectID, models.MilestoneStatusInvoiced)
	paidTotal, _ := s.milestoneRepo.SumByProjectIDAndStatus(projectID, models.MilestoneStatusPaid)
	stats.Billing.TotalAmount = totalAmount
	stats.Billing.InvoicedTotal = invoicedTotal
	stats.Billing.PaidTotal = paidTotal
	stats.Billing.PaidPercentage = utils.CalculatePercentage(paidTotal, totalAmount)

	return stats, nil
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(project models.Project) (models.Project, error) {
	if project.Status == "" {
		project.Status = models.ProjectStatusPlanned
	}
	return s.projectRepo.Create(project)
}

// UpdateProject updates an existing project
func (s *ProjectService) UpdateProject(project models.Project, userID string, isAdmin bool) (models.Project, error) {
	// Get existing project
	existingProject, err := s.projectRepo.FindByID(project.ID)
	if err != nil {
		return models.Project{}, err
	}

	// Access control - return error if not admin and not owner
	if !isAdmin && existingProject.UserID != userID {
		return models.Project{}, fmt.Errorf("unauthorized: you don't have permission to update this project")
	}

	// Preserve fields that shouldn't change through updates
	project.UserID = existingProject.UserID
	project.ProjectNumber = existingProject.ProjectNumber
	project.CreatedAt = existingProject.CreatedAt
	if project.Status == "" {
		project.Status = existingProject.Status
	}

	err = s.projectRepo.Update(project)
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject deletes a project with its schedule bars and milestones
func (s *ProjectService) DeleteProject(projectID string, userID string, isAdmin bool) error {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("project not found or already deleted")
	}

	if !isAdmin {
		owner, err := s.projectRepo.GetOwnerID(projectID)
		if err != nil {
			return err
		}

		if owner != userID {
			return fmt.Errorf("unauthorized: you don't have permission to delete this project")
		}
	}

	// Soft delete - the repository cascades to bars and milestones
	return s.projectRepo.Delete(projectID)
}
