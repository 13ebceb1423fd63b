package schedule

import (
	"testing"
	"time"

	"github.com/baytrack/baytrack/models"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func testBar(id, bayID string, start, end int) models.ScheduleBar {
	return models.ScheduleBar{
		ID:        id,
		BayID:     bayID,
		StartDate: day(start),
		EndDate:   day(end),
	}
}

func TestCountOverlappingSymmetry(t *testing.T) {
	e := NewEngine(Config{})

	a := testBar("a", "bay1", 1, 10)
	b := testBar("b", "bay1", 5, 15)
	bars := []models.ScheduleBar{a, b}

	assert.Equal(t, 1, e.CountOverlapping(a, bars))
	assert.Equal(t, 1, e.CountOverlapping(b, bars))
}

func TestCountOverlappingExcludesSelf(t *testing.T) {
	e := NewEngine(Config{})

	a := testBar("a", "bay1", 1, 10)
	assert.Equal(t, 0, e.CountOverlapping(a, []models.ScheduleBar{a}))
}

func TestCountOverlappingDifferentBays(t *testing.T) {
	e := NewEngine(Config{})

	a := testBar("a", "bay1", 1, 10)
	b := testBar("b", "bay2", 1, 10)
	bars := []models.ScheduleBar{a, b}

	assert.Equal(t, 0, e.CountOverlapping(a, bars))
	assert.Equal(t, 0, e.CountOverlapping(b, bars))
}

func TestCountOverlappingTouchingEndpoints(t *testing.T) {
	e := NewEngine(Config{})

	a := testBar("a", "bay1", 1, 10)
	b := testBar("b", "bay1", 10, 20) // starts the day a ends
	c := testBar("c", "bay1", 11, 20) // fully after a
	bars := []models.ScheduleBar{a, b, c}

	assert.Equal(t, 1, e.CountOverlapping(a, bars))
	assert.Equal(t, 2, e.CountOverlapping(b, bars))
	assert.Equal(t, 1, e.CountOverlapping(c, bars))
}

func TestCountOverlappingMultiple(t *testing.T) {
	e := NewEngine(Config{})

	bars := []models.ScheduleBar{
		testBar("a", "bay1", 1, 30),
		testBar("b", "bay1", 5, 10),
		testBar("c", "bay1", 12, 18),
		testBar("d", "bay1", 31, 40),
		testBar("e", "bay2", 1, 30),
	}

	assert.Equal(t, 2, e.CountOverlapping(bars[0], bars))
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(testBar("a", "x", 1, 10), testBar("b", "x", 10, 12)))
	assert.True(t, Overlaps(testBar("a", "x", 5, 6), testBar("b", "x", 1, 20)))
	assert.False(t, Overlaps(testBar("a", "x", 1, 9), testBar("b", "x", 10, 12)))
}
