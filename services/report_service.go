package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/baytrack/baytrack/dto"
	"github.com/baytrack/baytrack/models"
	"github.com/baytrack/baytrack/repositories"
)

// ReportService exports the computed schedule layout for offline use
type ReportService struct {
	scheduleService *ScheduleService
	bayRepo         *repositories.BayRepository
	projectRepo     *repositories.ProjectRepository
}

// NewReportService creates a new report service instance
func NewReportService() *ReportService {
	return &ReportService{
		scheduleService: NewScheduleService(),
		bayRepo:         repositories.NewBayRepository(),
		projectRepo:     repositories.NewProjectRepository(),
	}
}

// WriteScheduleCSV runs a layout pass and writes one row per bar, including
// the derived phase widths and expansion factor
func (s *ReportService) WriteScheduleCSV(w io.Writer, filter dto.LayoutFilter) error {
	layout, err := s.scheduleService.ComputeLayout(filter)
	if err != nil {
		return err
	}

	bays, err := s.bayRepo.FindAll()
	if err != nil {
		return err
	}
	bayNames := make(map[string]string, len(bays))
	for _, bay := range bays {
		bayNames[bay.ID] = bay.Name
	}

	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return err
	}
	projectNames := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}

	writer := csv.NewWriter(w)
	header := []string{
		"project", "bay", "startDate", "endDate", "totalHours", "width",
		"fabWidth", "paintWidth", "productionWidth", "itWidth", "ntcWidth", "qcWidth",
		"capacityExpansionFactor",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, bar := range layout.Bars {
		if err := writer.Write(scheduleCSVRow(bar, projectNames, bayNames)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func scheduleCSVRow(bar models.ScheduleBar, projectNames, bayNames map[string]string) []string {
	totalHours := ""
	if bar.TotalHours != nil {
		totalHours = fmt.Sprintf("%.1f", *bar.TotalHours)
	}

	return []string{
		projectNames[bar.ProjectID],
		bayNames[bar.BayID],
		bar.StartDate.Format("2006-01-02"),
		bar.EndDate.Format("2006-01-02"),
		totalHours,
		fmt.Sprintf("%.1f", bar.Width),
		fmt.Sprintf("%.2f", bar.FabWidth),
		fmt.Sprintf("%.2f", bar.PaintWidth),
		fmt.Sprintf("%.2f", bar.ProductionWidth),
		fmt.Sprintf("%.2f", bar.ItWidth),
		fmt.Sprintf("%.2f", bar.NtcWidth),
		fmt.Sprintf("%.2f", bar.QcWidth),
		fmt.Sprintf("%.2f", bar.CapacityExpansionFactor),
	}
}
