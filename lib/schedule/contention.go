package schedule

import "github.com/baytrack/baytrack/models"

// Overlaps reports whether two bars' [start, end] date ranges intersect.
// Touching endpoints count as overlapping.
func Overlaps(a, b models.ScheduleBar) bool {
	return !(a.EndDate.Before(b.StartDate) || a.StartDate.After(b.EndDate))
}

// CountOverlapping returns how many other bars share the bar's bay with an
// intersecting date range. The bar itself is never counted.
//
// O(n) per bar, O(n^2) over a full batch. Fine for the tens of concurrent
// bars a bay roster carries; revisit if bar counts grow into the thousands.
func (e *Engine) CountOverlapping(bar models.ScheduleBar, allBars []models.ScheduleBar) int {
	count := 0
	for _, other := range allBars {
		if other.ID == bar.ID || other.BayID != bar.BayID {
			continue
		}
		if Overlaps(bar, other) {
			count++
		}
	}
	return count
}
