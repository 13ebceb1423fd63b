package services

import (
	"fmt"
	"log"

	"github.com/baytrack/baytrack/config"
	"github.com/baytrack/baytrack/dto"
	"github.com/baytrack/baytrack/lib/schedule"
	"github.com/baytrack/baytrack/models"
	"github.com/baytrack/baytrack/repositories"
)

// ScheduleService handles schedule bar CRUD and layout computation. It is
// the only caller of the layout engine; computed widths are returned to the
// client and never written back to the database.
type ScheduleService struct {
	barRepo     *repositories.ScheduleBarRepository
	bayRepo     *repositories.BayRepository
	projectRepo *repositories.ProjectRepository
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService() *ScheduleService {
	return &ScheduleService{
		barRepo:     repositories.NewScheduleBarRepository(),
		bayRepo:     repositories.NewBayRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// engineConfig builds the layout engine configuration from the environment.
// Read per layout pass, not at service construction: services are created as
// package-level vars before main loads the .env file.
func engineConfig() schedule.Config {
	cfg := schedule.Config{
		Policy:       schedule.CapacityPolicy(config.GetEnv("SCHEDULE_CAPACITY_POLICY", string(schedule.PolicyRepresentative))),
		MaxExpansion: config.GetEnvFloat("SCHEDULE_MAX_EXPANSION", schedule.DefaultMaxExpansion),
	}
	if config.GetEnvBool("SCHEDULE_DEBUG", false) {
		cfg.Logf = log.Printf
	}
	return cfg
}

// ComputeLayout loads the full bar and bay sets, runs a layout pass and
// returns the annotated bars. Contention is always computed against the
// full bar set; the filter only narrows what is returned.
func (s *ScheduleService) ComputeLayout(filter dto.LayoutFilter) (dto.LayoutResponse, error) {
	engine := schedule.NewEngine(engineConfig())

	bars, err := s.barRepo.FindAll()
	if err != nil {
		return dto.LayoutResponse{}, err
	}

	bays, err := s.bayRepo.FindAll()
	if err != nil {
		return dto.LayoutResponse{}, err
	}

	updated := engine.UpdateAll(bars, bays)

	filtered := make([]models.ScheduleBar, 0, len(updated))
	for _, bar := range updated {
		if filter.BayID != "" && bar.BayID != filter.BayID {
			continue
		}
		if filter.From != nil && bar.EndDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && bar.StartDate.After(*filter.To) {
			continue
		}
		filtered = append(filtered, bar)
	}

	return dto.LayoutResponse{
		Bars:         filtered,
		Count:        len(filtered),
		MaxExpansion: engine.MaxExpansion(),
	}, nil
}

// ListBars retrieves all schedule bars, optionally scoped to a project
func (s *ScheduleService) ListBars(projectID string) ([]models.ScheduleBar, error) {
	if projectID != "" {
		return s.barRepo.FindByProjectID(projectID)
	}
	return s.barRepo.FindAll()
}

// GetBarDetail retrieves a specific schedule bar
func (s *ScheduleService) GetBarDetail(barID string) (models.ScheduleBar, error) {
	return s.barRepo.FindByID(barID)
}

// CreateBar places a project on a bay's timeline
func (s *ScheduleService) CreateBar(bar models.ScheduleBar) (models.ScheduleBar, error) {
	if err := s.validateBar(bar); err != nil {
		return models.ScheduleBar{}, err
	}

	exists, err := s.projectRepo.Exists(bar.ProjectID)
	if err != nil {
		return models.ScheduleBar{}, err
	}
	if !exists {
		return models.ScheduleBar{}, fmt.Errorf("project not found")
	}

	return s.barRepo.Create(bar)
}

// UpdateBar moves or resizes an existing schedule bar
func (s *ScheduleService) UpdateBar(bar models.ScheduleBar) (models.ScheduleBar, error) {
	existing, err := s.barRepo.FindByID(bar.ID)
	if err != nil {
		return models.ScheduleBar{}, err
	}

	// A bar stays attached to its project for its lifetime
	bar.ProjectID = existing.ProjectID
	bar.CreatedAt = existing.CreatedAt

	if err := s.validateBar(bar); err != nil {
		return models.ScheduleBar{}, err
	}

	if err := s.barRepo.Update(bar); err != nil {
		return models.ScheduleBar{}, err
	}

	return bar, nil
}

// DeleteBar removes a schedule bar
func (s *ScheduleService) DeleteBar(barID string) error {
	if _, err := s.barRepo.FindByID(barID); err != nil {
		return err
	}
	return s.barRepo.Delete(barID)
}

func (s *ScheduleService) validateBar(bar models.ScheduleBar) error {
	if bar.EndDate.Before(bar.StartDate) {
		return fmt.Errorf("end date must not be before start date")
	}

	bayExists, err := s.bayRepo.Exists(bar.BayID)
	if err != nil {
		return err
	}
	if !bayExists {
		return fmt.Errorf("bay not found")
	}

	return nil
}
