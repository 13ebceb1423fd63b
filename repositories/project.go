package repositories

import (
	"github.com/baytrack/baytrack/database"
	"github.com/baytrack/baytrack/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAll retrieves all projects
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// Delete removes a project from the database (soft delete)
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		// Soft delete the project's schedule bars and milestones first
		if err := tx.Where("project_id = ?", id).Delete(&models.ScheduleBar{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.BillingMilestone{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Project{}, "id = ?", id)
		return result.Error
	})
}

// Exists checks if a live (not soft-deleted) project exists
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetOwnerID returns the user ID who owns the project
func (r *ProjectRepository) GetOwnerID(id string) (string, error) {
	type ProjectOwner struct {
		UserID string
	}

	var owner ProjectOwner
	err := database.DB.Model(&models.Project{}).Select("user_id").Where("id = ?", id).First(&owner).Error
	return owner.UserID, err
}

// WithSchedule loads a project with its schedule bars and billing milestones
func (r *ProjectRepository) WithSchedule(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("ScheduleBars").Preload("BillingMilestones").First(&project, "id = ?", id)
	return project, result.Error
}

// FindWithPagination retrieves projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	page, pageSize int,
	sortBy, sortOrder string,
	userID string,
	isAdmin bool,
	search, status string) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	// Non-admins only see their own projects
	if !isAdmin && userID != "" {
		db = db.Where("user_id = ?", userID)
	}

	if status != "" {
		db = db.Where("status = ?", status)
	}

	// Search functionality
	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name ILIKE ? OR project_number ILIKE ? OR client ILIKE ?)", searchPattern, searchPattern, searchPattern)
	}

	// Count total records with the same filter
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	// Calculate offset for pagination
	offset := (page - 1) * pageSize

	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}
