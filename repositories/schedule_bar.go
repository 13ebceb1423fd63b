package repositories

import (
	"github.com/baytrack/baytrack/database"
	"github.com/baytrack/baytrack/models"
)

// ScheduleBarRepository handles database operations for schedule bars
type ScheduleBarRepository struct{}

// NewScheduleBarRepository creates a new schedule bar repository instance
func NewScheduleBarRepository() *ScheduleBarRepository {
	return &ScheduleBarRepository{}
}

// FindAll retrieves every schedule bar. The layout engine needs the full set
// as its contention universe, so there is no filtered variant of this call.
func (r *ScheduleBarRepository) FindAll() ([]models.ScheduleBar, error) {
	var bars []models.ScheduleBar
	result := database.DB.Order("start_date asc").Find(&bars)
	return bars, result.Error
}

// FindByID retrieves a schedule bar by its ID
func (r *ScheduleBarRepository) FindByID(id string) (models.ScheduleBar, error) {
	var bar models.ScheduleBar
	result := database.DB.First(&bar, "id = ?", id)
	return bar, result.Error
}

// FindByProjectID retrieves all bars placed for a project
func (r *ScheduleBarRepository) FindByProjectID(projectID string) ([]models.ScheduleBar, error) {
	var bars []models.ScheduleBar
	result := database.DB.Where("project_id = ?", projectID).Order("start_date asc").Find(&bars)
	return bars, result.Error
}

// Create inserts a new schedule bar into the database
func (r *ScheduleBarRepository) Create(bar models.ScheduleBar) (models.ScheduleBar, error) {
	result := database.DB.Create(&bar)
	return bar, result.Error
}

// Update modifies an existing schedule bar
func (r *ScheduleBarRepository) Update(bar models.ScheduleBar) error {
	result := database.DB.Save(&bar)
	return result.Error
}

// Delete removes a schedule bar from the database (soft delete)
func (r *ScheduleBarRepository) Delete(id string) error {
	result := database.DB.Delete(&models.ScheduleBar{}, "id = ?", id)
	return result.Error
}
