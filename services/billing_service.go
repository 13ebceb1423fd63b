package services

import (
	"errors"
	"fmt"

	"github.com/baytrack/baytrack/dto"
	"github.com/baytrack/baytrack/models"
	"github.com/baytrack/baytrack/repositories"
)

// BillingService handles business logic for billing milestones
type BillingService struct {
	milestoneRepo *repositories.BillingMilestoneRepository
	projectRepo   *repositories.ProjectRepository
}

// NewBillingService creates a new billing service instance
func NewBillingService() *BillingService {
	return &BillingService{
		milestoneRepo: repositories.NewBillingMilestoneRepository(),
		projectRepo:   repositories.NewProjectRepository(),
	}
}

// ListMilestones retrieves all milestones for a project
func (s *BillingService) ListMilestones(projectID string, userID string, isAdmin bool) ([]models.BillingMilestone, error) {
	if err := s.checkProjectAccess(projectID, userID, isAdmin); err != nil {
		return nil, err
	}
	return s.milestoneRepo.FindByProjectID(projectID)
}

// GetSummary returns billing totals for a project
func (s *BillingService) GetSummary(projectID string, userID string, isAdmin bool) (dto.BillingSummaryResponse, error) {
	if err := s.checkProjectAccess(projectID, userID, isAdmin); err != nil {
		return dto.BillingSummaryResponse{}, err
	}

	milestones, err := s.milestoneRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.BillingSummaryResponse{}, err
	}

	summary := dto.BillingSummaryResponse{
		ProjectID:  projectID,
		Milestones: len(milestones),
	}

	for _, m := range milestones {
		summary.TotalAmount += m.Amount
		switch m.Status {
		case models.MilestoneStatusInvoiced:
			summary.InvoicedTotal += m.Amount
		case models.MilestoneStatusPaid:
			summary.PaidTotal += m.Amount
		default:
			summary.UpcomingTotal += m.Amount
		}
	}

	return summary, nil
}

// CreateMilestone adds a billing milestone to a project
func (s *BillingService) CreateMilestone(milestone models.BillingMilestone, userID string, isAdmin bool) (models.BillingMilestone, error) {
	if err := s.checkProjectAccess(milestone.ProjectID, userID, isAdmin); err != nil {
		return models.BillingMilestone{}, err
	}

	if milestone.Status == "" {
		milestone.Status = models.MilestoneStatusUpcoming
	}

	return s.milestoneRepo.Create(milestone)
}

// UpdateMilestone modifies an existing milestone
func (s *BillingService) UpdateMilestone(milestone models.BillingMilestone, userID string, isAdmin bool) (models.BillingMilestone, error) {
	existing, err := s.milestoneRepo.FindByID(milestone.ID)
	if err != nil {
		return models.BillingMilestone{}, err
	}

	if err := s.checkProjectAccess(existing.ProjectID, userID, isAdmin); err != nil {
		return models.BillingMilestone{}, err
	}

	// Milestones never move between projects
	milestone.ProjectID = existing.ProjectID
	milestone.CreatedAt = existing.CreatedAt
	if milestone.Status == "" {
		milestone.Status = existing.Status
	}

	if err := s.milestoneRepo.Update(milestone); err != nil {
		return models.BillingMilestone{}, err
	}

	return milestone, nil
}

// DeleteMilestone removes a milestone
func (s *BillingService) DeleteMilestone(milestoneID string, userID string, isAdmin bool) error {
	existing, err := s.milestoneRepo.FindByID(milestoneID)
	if err != nil {
		return err
	}

	if err := s.checkProjectAccess(existing.ProjectID, userID, isAdmin); err != nil {
		return err
	}

	return s.milestoneRepo.Delete(milestoneID)
}

func (s *BillingService) checkProjectAccess(projectID string, userID string, isAdmin bool) error {
	if isAdmin {
		return nil
	}

	ownerID, err := s.projectRepo.GetOwnerID(projectID)
	if err != nil {
		return fmt.Errorf("project not found")
	}

	if ownerID != userID {
		return errors.New("unauthorized access to project billing")
	}

	return nil
}
