package repositories

import (
	"github.com/baytrack/baytrack/database"
	"github.com/baytrack/baytrack/models"
)

// BayRepository handles database operations for production bays
type BayRepository struct{}

// NewBayRepository creates a new bay repository instance
func NewBayRepository() *BayRepository {
	return &BayRepository{}
}

// FindAll retrieves the full bay roster
func (r *BayRepository) FindAll() ([]models.Bay, error) {
	var bays []models.Bay
	result := database.DB.Order("name asc").Find(&bays)
	return bays, result.Error
}

// FindByID retrieves a bay by its ID
func (r *BayRepository) FindByID(id string) (models.Bay, error) {
	var bay models.Bay
	result := database.DB.First(&bay, "id = ?", id)
	return bay, result.Error
}

// Create inserts a new bay into the database
func (r *BayRepository) Create(bay models.Bay) (models.Bay, error) {
	result := database.DB.Create(&bay)
	return bay, result.Error
}

// Update modifies an existing bay
func (r *BayRepository) Update(bay models.Bay) error {
	result := database.DB.Save(&bay)
	return result.Error
}

// Delete removes a bay from the database (soft delete)
func (r *BayRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Bay{}, "id = ?", id)
	return result.Error
}

// Exists checks if a bay exists
func (r *BayRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Bay{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountBarsInBay counts the schedule bars currently placed on a bay
func (r *BayRepository) CountBarsInBay(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.ScheduleBar{}).Where("bay_id = ?", id).Count(&count)
	return count, result.Error
}
