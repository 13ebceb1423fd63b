package schedule

import "github.com/baytrack/baytrack/models"

// ComputePhaseWidths returns a copy of the bar annotated with the six phase
// widths and the capacity expansion factor. All other fields are unchanged.
//
// Only the production segment is capacity-expanded. The factor is the number
// of weeks of per-project team capacity the production hours alone would
// consume, clamped to [1, MaxExpansion]; it never shrinks the segment.
// A bay lookup miss, missing total hours, or zero capacity all degrade to
// defaults rather than failing the pass.
func (e *Engine) ComputePhaseWidths(bar models.ScheduleBar, allBars []models.ScheduleBar, allBays []models.Bay) models.ScheduleBar {
	totalWidth := bar.Width

	teamCapacity := DefaultTeamCapacity
	if bay, ok := findBay(bar.BayID, allBays); ok {
		teamCapacity = e.ResolveTeamCapacity(bay, allBays)
	}

	overlapCount := e.CountOverlapping(bar, allBars)

	// The "+1" counts the bar itself as a claimant on shared team capacity.
	capacityPerProject := teamCapacity
	if overlapCount > 0 {
		capacityPerProject = teamCapacity / float64(overlapCount+1)
	}

	factor := 1.0
	if bar.TotalHours != nil && capacityPerProject > 0 {
		productionHours := *bar.TotalHours * bar.ProductionPercentage / 100
		factor = clamp(productionHours/capacityPerProject, 1, e.cfg.MaxExpansion)
	}

	bar.FabWidth = bar.FabPercentage / 100 * totalWidth
	bar.PaintWidth = bar.PaintPercentage / 100 * totalWidth
	bar.ProductionWidth = bar.ProductionPercentage / 100 * totalWidth * factor
	bar.ItWidth = bar.ItPercentage / 100 * totalWidth
	bar.NtcWidth = bar.NtcPercentage / 100 * totalWidth
	bar.QcWidth = bar.QcPercentage / 100 * totalWidth
	bar.CapacityExpansionFactor = factor

	e.logf("schedule: bar %s overlap=%d capacity/project=%.1f factor=%.2f",
		bar.ID, overlapCount, capacityPerProject, factor)

	return bar
}

// UpdateAll applies ComputePhaseWidths to every bar. Contention is computed
// against the original snapshot for every element, so the result does not
// depend on iteration order. Deterministic for fixed inputs.
func (e *Engine) UpdateAll(bars []models.ScheduleBar, allBays []models.Bay) []models.ScheduleBar {
	updated := make([]models.ScheduleBar, len(bars))
	for i, bar := range bars {
		updated[i] = e.ComputePhaseWidths(bar, bars, allBays)
	}
	return updated
}

func findBay(id string, bays []models.Bay) (models.Bay, bool) {
	for _, b := range bays {
		if b.ID == id {
			return b, true
		}
	}
	return models.Bay{}, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
