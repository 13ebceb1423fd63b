package services

import (
	"fmt"
	"log"

	"github.com/baytrack/baytrack/models"
	"github.com/baytrack/baytrack/repositories"
	"github.com/baytrack/baytrack/utils"
)

// BayService handles business logic for the production bay roster
type BayService struct {
	bayRepo *repositories.BayRepository
}

// NewBayService creates a new bay service instance
func NewBayService() *BayService {
	return &BayService{
		bayRepo: repositories.NewBayRepository(),
	}
}

// ListBays retrieves the full bay roster
func (s *BayService) ListBays() ([]models.Bay, error) {
	return s.bayRepo.FindAll()
}

// GetBayDetail retrieves a specific bay
func (s *BayService) GetBayDetail(bayID string) (models.Bay, error) {
	return s.bayRepo.FindByID(bayID)
}

// CreateBay adds a bay to the roster
func (s *BayService) CreateBay(bay models.Bay) (models.Bay, error) {
	created, err := s.bayRepo.Create(bay)
	if err != nil {
		return models.Bay{}, err
	}

	if created.HoursPerWeek != nil {
		log.Printf("🏭 Bay %s added at %s", created.Name, utils.FormatHoursPerWeek(*created.HoursPerWeek))
	}
	return created, nil
}

// UpdateBay modifies a bay's team assignment or staffing
func (s *BayService) UpdateBay(bay models.Bay) (models.Bay, error) {
	existing, err := s.bayRepo.FindByID(bay.ID)
	if err != nil {
		return models.Bay{}, err
	}

	bay.CreatedAt = existing.CreatedAt
	if err := s.bayRepo.Update(bay); err != nil {
		return models.Bay{}, err
	}

	return bay, nil
}

// DeleteBay removes a bay from the roster. A bay that still carries
// schedule bars cannot be removed.
func (s *BayService) DeleteBay(bayID string) error {
	exists, err := s.bayRepo.Exists(bayID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bay not found")
	}

	barCount, err := s.bayRepo.CountBarsInBay(bayID)
	if err != nil {
		return err
	}
	if barCount > 0 {
		return fmt.Errorf("bay still has %d schedule bars, move them first", barCount)
	}

	return s.bayRepo.Delete(bayID)
}
