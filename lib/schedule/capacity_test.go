package schedule

import (
	"testing"

	"github.com/baytrack/baytrack/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

func TestResolveTeamCapacityNoTeam(t *testing.T) {
	e := NewEngine(Config{})

	assert.Equal(t, 58.0, e.ResolveTeamCapacity(models.Bay{ID: "b1"}, nil))
	assert.Equal(t, 58.0, e.ResolveTeamCapacity(models.Bay{ID: "b1", Team: strPtr("")}, nil))
}

func TestResolveTeamCapacityRepresentative(t *testing.T) {
	e := NewEngine(Config{Policy: PolicyRepresentative})

	bays := []models.Bay{
		{
			ID:                   "b1",
			Team:                 strPtr("Alpha"),
			AssemblyStaffCount:   intPtr(2),
			ElectricalStaffCount: intPtr(1),
			HoursPerWeek:         f64Ptr(29),
		},
		// Second row of the same pooled crew must not inflate capacity.
		{
			ID:                   "b2",
			Team:                 strPtr("Alpha"),
			AssemblyStaffCount:   intPtr(4),
			ElectricalStaffCount: intPtr(2),
			HoursPerWeek:         f64Ptr(40),
		},
	}

	assert.Equal(t, 87.0, e.ResolveTeamCapacity(bays[0], bays))
	// Resolution keys on the team name, not the asking bay row.
	assert.Equal(t, 87.0, e.ResolveTeamCapacity(bays[1], bays))
}

func TestResolveTeamCapacityRepresentativeDefaults(t *testing.T) {
	e := NewEngine(Config{})

	// Staff counts and hours absent: 2 assembly + 1 electrical at 29 h/wk.
	bays := []models.Bay{{ID: "b1", Team: strPtr("Bravo")}}
	assert.Equal(t, 87.0, e.ResolveTeamCapacity(bays[0], bays))
}

func TestResolveTeamCapacitySummed(t *testing.T) {
	e := NewEngine(Config{Policy: PolicySummed})

	bays := []models.Bay{
		{ID: "b1", Team: strPtr("Alpha"), AssemblyStaffCount: intPtr(2), ElectricalStaffCount: intPtr(1), HoursPerWeek: f64Ptr(29)},
		{ID: "b2", Team: strPtr("Alpha"), AssemblyStaffCount: intPtr(1), HoursPerWeek: f64Ptr(40)},
		{ID: "b3", Team: strPtr("Other"), AssemblyStaffCount: intPtr(9)},
	}

	// 2+1+1 staff, hours from the last Alpha row with a value.
	assert.Equal(t, 160.0, e.ResolveTeamCapacity(bays[0], bays))
}

func TestResolveTeamCapacitySummedDefaultHours(t *testing.T) {
	e := NewEngine(Config{Policy: PolicySummed})

	bays := []models.Bay{
		{ID: "b1", Team: strPtr("Alpha"), AssemblyStaffCount: intPtr(3)},
	}
	assert.Equal(t, 87.0, e.ResolveTeamCapacity(bays[0], bays))
}

func TestResolveTeamCapacityNonPositiveFallsBack(t *testing.T) {
	e := NewEngine(Config{Policy: PolicySummed})

	// Team rows exist but carry zero staff.
	bays := []models.Bay{
		{ID: "b1", Team: strPtr("Alpha"), AssemblyStaffCount: intPtr(0), ElectricalStaffCount: intPtr(0)},
	}
	assert.Equal(t, 58.0, e.ResolveTeamCapacity(bays[0], bays))

	// Team name that matches no roster row at all.
	ghost := models.Bay{ID: "bx", Team: strPtr("Ghost")}
	assert.Equal(t, 58.0, NewEngine(Config{}).ResolveTeamCapacity(ghost, bays))
}
