package repositories

import (
	"github.com/baytrack/baytrack/database"
	"github.com/baytrack/baytrack/models"
)

// BillingMilestoneRepository handles database operations for billing milestones
type BillingMilestoneRepository struct{}

// NewBillingMilestoneRepository creates a new billing milestone repository instance
func NewBillingMilestoneRepository() *BillingMilestoneRepository {
	return &BillingMilestoneRepository{}
}

// FindByID retrieves a milestone by its ID
func (r *BillingMilestoneRepository) FindByID(id string) (models.BillingMilestone, error) {
	var milestone models.BillingMilestone
	result := database.DB.First(&milestone, "id = ?", id)
	return milestone, result.Error
}

// FindByProjectID retrieves all milestones for a project
func (r *BillingMilestoneRepository) FindByProjectID(projectID string) ([]models.BillingMilestone, error) {
	var milestones []models.BillingMilestone
	result := database.DB.Where("project_id = ?", projectID).Order("target_date asc").Find(&milestones)
	return milestones, result.Error
}

// Create inserts a new milestone into the database
func (r *BillingMilestoneRepository) Create(milestone models.BillingMilestone) (models.BillingMilestone, error) {
	result := database.DB.Create(&milestone)
	return milestone, result.Error
}

// Update modifies an existing milestone
func (r *BillingMilestoneRepository) Update(milestone models.BillingMilestone) error {
	result := database.DB.Save(&milestone)
	return result.Error
}

// Delete removes a milestone from the database (soft delete)
func (r *BillingMilestoneRepository) Delete(id string) error {
	result := database.DB.Delete(&models.BillingMilestone{}, "id = ?", id)
	return result.Error
}

// SumByProjectIDAndStatus totals milestone amounts for a project in a status
func (r *BillingMilestoneRepository) SumByProjectIDAndStatus(projectID string, status models.MilestoneStatus) (float64, error) {
	var total float64
	result := database.DB.Model(&models.BillingMilestone{}).
		Where("project_id = ? AND status = ?", projectID, status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, result.Error
}

// SumByProjectID totals all milestone amounts for a project
func (r *BillingMilestoneRepository) SumByProjectID(projectID string) (float64, error) {
	var total float64
	result := database.DB.Model(&models.BillingMilestone{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, result.Error
}
