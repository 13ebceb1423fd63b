package schedule

import "github.com/baytrack/baytrack/models"

// ResolveTeamCapacity determines the effective weekly labor-hour capacity of
// the team owning the given bay. Always returns a positive number: a bay
// with no team, or a team whose rows resolve to a non-positive total, yields
// DefaultTeamCapacity.
func (e *Engine) ResolveTeamCapacity(bay models.Bay, allBays []models.Bay) float64 {
	if bay.Team == nil || *bay.Team == "" {
		return DefaultTeamCapacity
	}

	var capacity float64
	switch e.cfg.Policy {
	case PolicySummed:
		capacity = summedCapacity(*bay.Team, allBays)
	default:
		capacity = representativeCapacity(*bay.Team, allBays)
	}

	if capacity <= 0 {
		return DefaultTeamCapacity
	}

	e.logf("schedule: team %q capacity %.1f h/wk (%s policy)", *bay.Team, capacity, e.cfg.Policy)
	return capacity
}

// representativeCapacity reads staff counts and hours off the first bay row
// carrying the team. One crew pooled across several bay rows is counted once.
func representativeCapacity(team string, allBays []models.Bay) float64 {
	for _, b := range allBays {
		if b.Team == nil || *b.Team != team {
			continue
		}

		assembly := DefaultAssemblyStaff
		if b.AssemblyStaffCount != nil {
			assembly = *b.AssemblyStaffCount
		}
		electrical := DefaultElectricalStaff
		if b.ElectricalStaffCount != nil {
			electrical = *b.ElectricalStaffCount
		}
		hours := DefaultHoursPerWeek
		if b.HoursPerWeek != nil {
			hours = *b.HoursPerWeek
		}

		return float64(assembly+electrical) * hours
	}
	return 0
}

// summedCapacity totals staff across every bay row of the team, multiplied
// by the hours of the last row with a non-null value. Overstates capacity
// when rows describe one pooled crew, which is why it is not the default.
func summedCapacity(team string, allBays []models.Bay) float64 {
	staff := 0
	hours := 0.0
	for _, b := range allBays {
		if b.Team == nil || *b.Team != team {
			continue
		}
		if b.AssemblyStaffCount != nil {
			staff += *b.AssemblyStaffCount
		}
		if b.ElectricalStaffCount != nil {
			staff += *b.ElectricalStaffCount
		}
		if b.HoursPerWeek != nil {
			hours = *b.HoursPerWeek
		}
	}
	if hours == 0 {
		hours = DefaultHoursPerWeek
	}
	return float64(staff) * hours
}
