package schedule

import (
	"testing"

	"github.com/baytrack/baytrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alphaBay() models.Bay {
	return models.Bay{
		ID:                   "bay1",
		Name:                 "Bay 1",
		Team:                 strPtr("Alpha"),
		AssemblyStaffCount:   intPtr(2),
		ElectricalStaffCount: intPtr(1),
		HoursPerWeek:         f64Ptr(29),
	}
}

func TestComputePhaseWidthsSingleBarExpansion(t *testing.T) {
	// Team Alpha: 2 assembly + 1 electrical at 29 h/wk -> 87 h/wk.
	// 1000 total hours at 60% production -> 600 production hours,
	// 600 / 87 = 6.8966 raw expansion.
	bar := models.ScheduleBar{
		ID:                   "a",
		BayID:                "bay1",
		StartDate:            day(1),
		EndDate:              day(28),
		TotalHours:           f64Ptr(1000),
		Width:                500,
		FabPercentage:        15,
		PaintPercentage:      10,
		ProductionPercentage: 60,
		ItPercentage:         5,
		NtcPercentage:        5,
		QcPercentage:         5,
	}
	bays := []models.Bay{alphaBay()}
	bars := []models.ScheduleBar{bar}

	t.Run("ceiling 5", func(t *testing.T) {
		e := NewEngine(Config{MaxExpansion: 5})
		got := e.ComputePhaseWidths(bar, bars, bays)

		assert.Equal(t, 5.0, got.CapacityExpansionFactor)
		assert.InDelta(t, 0.6*500*5, got.ProductionWidth, 1e-9)
	})

	t.Run("ceiling 10", func(t *testing.T) {
		e := NewEngine(Config{MaxExpansion: 10})
		got := e.ComputePhaseWidths(bar, bars, bays)

		assert.InDelta(t, 600.0/87.0, got.CapacityExpansionFactor, 1e-9)
		assert.InDelta(t, 0.6*500*(600.0/87.0), got.ProductionWidth, 1e-9)
	})
}

func TestComputePhaseWidthsOnlyProductionExpands(t *testing.T) {
	e := NewEngine(Config{MaxExpansion: 5})

	bar := models.ScheduleBar{
		ID:                   "a",
		BayID:                "bay1",
		StartDate:            day(1),
		EndDate:              day(28),
		TotalHours:           f64Ptr(10000), // forces the ceiling
		Width:                400,
		FabPercentage:        20,
		PaintPercentage:      10,
		ProductionPercentage: 50,
		ItPercentage:         8,
		NtcPercentage:        7,
		QcPercentage:         5,
	}
	got := e.ComputePhaseWidths(bar, []models.ScheduleBar{bar}, []models.Bay{alphaBay()})

	assert.InDelta(t, 80.0, got.FabWidth, 1e-9)
	assert.InDelta(t, 40.0, got.PaintWidth, 1e-9)
	assert.InDelta(t, 32.0, got.ItWidth, 1e-9)
	assert.InDelta(t, 28.0, got.NtcWidth, 1e-9)
	assert.InDelta(t, 20.0, got.QcWidth, 1e-9)
	assert.Equal(t, 5.0, got.CapacityExpansionFactor)
	assert.InDelta(t, 0.5*400*5, got.ProductionWidth, 1e-9)
}

func TestComputePhaseWidthsContendedCapacity(t *testing.T) {
	// Team at 80 h/wk shared by two fully overlapping bars: each project
	// claims 40 h/wk, so 200 production hours raw-expand by exactly 5.
	e := NewEngine(Config{})

	bays := []models.Bay{{
		ID:                   "bay1",
		Team:                 strPtr("Zulu"),
		AssemblyStaffCount:   intPtr(2),
		ElectricalStaffCount: intPtr(0),
		HoursPerWeek:         f64Ptr(40),
	}}

	a := models.ScheduleBar{
		ID: "a", BayID: "bay1", StartDate: day(1), EndDate: day(14),
		TotalHours: f64Ptr(400), Width: 300, ProductionPercentage: 50,
	}
	b := models.ScheduleBar{
		ID: "b", BayID: "bay1", StartDate: day(1), EndDate: day(14),
		TotalHours: f64Ptr(100), Width: 300, ProductionPercentage: 50,
	}
	bars := []models.ScheduleBar{a, b}

	got := e.ComputePhaseWidths(a, bars, bays)
	assert.Equal(t, 5.0, got.CapacityExpansionFactor)
	assert.InDelta(t, 0.5*300*5, got.ProductionWidth, 1e-9)
}

func TestComputePhaseWidthsBayLookupMiss(t *testing.T) {
	e := NewEngine(Config{})

	bar := models.ScheduleBar{
		ID: "a", BayID: "nope", StartDate: day(1), EndDate: day(7),
		TotalHours: f64Ptr(58), Width: 100, ProductionPercentage: 100,
	}

	// 58 production hours against the 58 h/wk default: factor exactly 1.
	got := e.ComputePhaseWidths(bar, []models.ScheduleBar{bar}, nil)
	assert.Equal(t, 1.0, got.CapacityExpansionFactor)
	assert.InDelta(t, 100.0, got.ProductionWidth, 1e-9)
}

func TestComputePhaseWidthsProportionalFallback(t *testing.T) {
	// No total hours: every width is the plain proportional share and the
	// factor stays at 1.
	e := NewEngine(Config{})

	bar := models.ScheduleBar{
		ID: "a", BayID: "bay1", StartDate: day(1), EndDate: day(7),
		Width:                200,
		FabPercentage:        25,
		PaintPercentage:      15,
		ProductionPercentage: 40,
		ItPercentage:         10,
		NtcPercentage:        5,
		QcPercentage:         5,
	}
	got := e.ComputePhaseWidths(bar, []models.ScheduleBar{bar}, []models.Bay{alphaBay()})

	assert.Equal(t, 1.0, got.CapacityExpansionFactor)
	assert.InDelta(t, 50.0, got.FabWidth, 1e-9)
	assert.InDelta(t, 30.0, got.PaintWidth, 1e-9)
	assert.InDelta(t, 80.0, got.ProductionWidth, 1e-9)
	assert.InDelta(t, 20.0, got.ItWidth, 1e-9)
	assert.InDelta(t, 10.0, got.NtcWidth, 1e-9)
	assert.InDelta(t, 10.0, got.QcWidth, 1e-9)
}

func TestComputePhaseWidthsNeverContracts(t *testing.T) {
	// Tiny workload: raw expansion well under 1, clamped up to 1.
	e := NewEngine(Config{})

	bar := models.ScheduleBar{
		ID: "a", BayID: "bay1", StartDate: day(1), EndDate: day(7),
		TotalHours: f64Ptr(10), Width: 100, ProductionPercentage: 50,
	}
	got := e.ComputePhaseWidths(bar, []models.ScheduleBar{bar}, []models.Bay{alphaBay()})

	assert.Equal(t, 1.0, got.CapacityExpansionFactor)
	assert.InDelta(t, 50.0, got.ProductionWidth, 1e-9)
}

func TestComputePhaseWidthsToleratesOddPercentages(t *testing.T) {
	// Percentages summing past 100 are accepted as-is, not normalized.
	e := NewEngine(Config{})

	bar := models.ScheduleBar{
		ID: "a", BayID: "bay1", StartDate: day(1), EndDate: day(7),
		Width: 100, FabPercentage: 90, ProductionPercentage: 90,
	}
	got := e.ComputePhaseWidths(bar, []models.ScheduleBar{bar}, nil)

	assert.InDelta(t, 90.0, got.FabWidth, 1e-9)
	assert.InDelta(t, 90.0, got.ProductionWidth, 1e-9)
}

func TestUpdateAllDeterministic(t *testing.T) {
	e := NewEngine(Config{})

	bays := []models.Bay{alphaBay()}
	bars := []models.ScheduleBar{
		{ID: "a", BayID: "bay1", StartDate: day(1), EndDate: day(14), TotalHours: f64Ptr(500), Width: 300, ProductionPercentage: 60},
		{ID: "b", BayID: "bay1", StartDate: day(10), EndDate: day(24), TotalHours: f64Ptr(800), Width: 350, ProductionPercentage: 55},
		{ID: "c", BayID: "bay2", StartDate: day(1), EndDate: day(28), Width: 200, ProductionPercentage: 40},
	}

	first := e.UpdateAll(bars, bays)
	second := e.UpdateAll(bars, bays)
	assert.Equal(t, first, second)
}

func TestUpdateAllUsesOriginalSnapshot(t *testing.T) {
	// Reversing the input order must not change any bar's result: contention
	// is computed against the pre-update snapshot, not partial output.
	e := NewEngine(Config{})

	bays := []models.Bay{alphaBay()}
	bars := []models.ScheduleBar{
		{ID: "a", BayID: "bay1", StartDate: day(1), EndDate: day(14), TotalHours: f64Ptr(500), Width: 300, ProductionPercentage: 60},
		{ID: "b", BayID: "bay1", StartDate: day(7), EndDate: day(21), TotalHours: f64Ptr(700), Width: 300, ProductionPercentage: 50},
	}
	reversed := []models.ScheduleBar{bars[1], bars[0]}

	forward := e.UpdateAll(bars, bays)
	backward := e.UpdateAll(reversed, bays)

	byID := map[string]models.ScheduleBar{}
	for _, bar := range backward {
		byID[bar.ID] = bar
	}
	for _, bar := range forward {
		assert.Equal(t, byID[bar.ID], bar)
	}
}

func TestUpdateAllCeilingRespected(t *testing.T) {
	e := NewEngine(Config{MaxExpansion: 10})

	bays := []models.Bay{alphaBay()}
	bars := []models.ScheduleBar{
		{ID: "a", BayID: "bay1", StartDate: day(1), EndDate: day(14), TotalHours: f64Ptr(1e9), Width: 300, ProductionPercentage: 60},
	}

	got := e.UpdateAll(bars, bays)
	require.Len(t, got, 1)
	assert.Equal(t, 10.0, got[0].CapacityExpansionFactor)
}

func TestUpdateAllLeavesInputUntouched(t *testing.T) {
	e := NewEngine(Config{})

	bars := []models.ScheduleBar{
		{ID: "a", BayID: "bay1", StartDate: day(1), EndDate: day(14), TotalHours: f64Ptr(900), Width: 300, ProductionPercentage: 60},
	}

	_ = e.UpdateAll(bars, []models.Bay{alphaBay()})
	assert.Zero(t, bars[0].ProductionWidth)
	assert.Zero(t, bars[0].CapacityExpansionFactor)
}

func TestEngineDiagnosticHook(t *testing.T) {
	var lines int
	e := NewEngine(Config{Logf: func(format string, args ...interface{}) { lines++ }})

	bar := models.ScheduleBar{ID: "a", BayID: "bay1", StartDate: day(1), EndDate: day(7), Width: 100}
	e.ComputePhaseWidths(bar, []models.ScheduleBar{bar}, []models.Bay{alphaBay()})
	assert.Greater(t, lines, 0)

	// Nil hook must be a no-op, not a panic.
	silent := NewEngine(Config{})
	assert.NotPanics(t, func() {
		silent.ComputePhaseWidths(bar, []models.ScheduleBar{bar}, []models.Bay{alphaBay()})
	})
}
