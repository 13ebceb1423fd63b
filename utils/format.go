package utils

import (
	"fmt"
)

// FormatHoursPerWeek formats a weekly capacity value to a consistent string
func FormatHoursPerWeek(hours float64) string {
	return fmt.Sprintf("%.1f h/wk", hours)
}

// CalculatePercentage calculates a share percentage
// Returns 0 if total is 0 or negative
func CalculatePercentage(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return (part / total) * 100
}
