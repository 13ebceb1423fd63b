// Package schedule computes the capacity-aware layout of project schedule
// bars on production bays.
//
// Given the full set of bars and bays, the engine subdivides each bar's
// visual width into the six manufacturing phases (fabrication, paint,
// production, IT, NTC, QC) and stretches the production segment when the
// owning team's weekly labor capacity cannot absorb the production hours,
// accounting for other bars contending for the same bay.
//
// The engine is stateless: every call is a pure function of its inputs and
// it never returns an error. Degenerate inputs (missing bay, absent hours,
// zero capacity) degrade to documented defaults so a layout pass can never
// abort because one project's data is incomplete.
package schedule

// CapacityPolicy selects how a team's weekly capacity is derived when the
// team spans multiple bay rows.
type CapacityPolicy string

const (
	// PolicyRepresentative uses only the first bay row of the team. This is
	// the default: staff pooled across several bays for one team must not be
	// counted once per row.
	PolicyRepresentative CapacityPolicy = "representative"

	// PolicySummed sums staff counts across every bay row of the team. Kept
	// selectable to reproduce the older observed behavior, never applied
	// silently.
	PolicySummed CapacityPolicy = "summed"
)

const (
	// DefaultHoursPerWeek is the standard work week assumed when a bay does
	// not specify one.
	DefaultHoursPerWeek = 29.0

	// DefaultAssemblyStaff and DefaultElectricalStaff fill in missing staff
	// counts on a team's bay row.
	DefaultAssemblyStaff   = 2
	DefaultElectricalStaff = 1

	// DefaultTeamCapacity is the fallback weekly capacity for bays with no
	// team or an unresolvable one: 2 staff x 29 hours.
	DefaultTeamCapacity = 58.0

	// DefaultMaxExpansion caps the production-segment width multiplier. 5 is
	// an attested alternative; configure it via Config.MaxExpansion.
	DefaultMaxExpansion = 10.0
)

// Config tunes the layout engine.
type Config struct {
	// Policy selects the capacity resolution policy. Empty means
	// PolicyRepresentative.
	Policy CapacityPolicy

	// MaxExpansion is the ceiling for the capacity expansion factor.
	// Values below 1 fall back to DefaultMaxExpansion.
	MaxExpansion float64

	// Logf is an optional diagnostic hook. Nil disables diagnostics; the
	// engine never logs on its own.
	Logf func(format string, args ...interface{})
}

// Engine computes phase widths for schedule bars.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given configuration, filling in
// defaults for zero values.
func NewEngine(cfg Config) *Engine {
	if cfg.Policy == "" {
		cfg.Policy = PolicyRepresentative
	}
	if cfg.MaxExpansion < 1 {
		cfg.MaxExpansion = DefaultMaxExpansion
	}
	return &Engine{cfg: cfg}
}

// MaxExpansion returns the configured expansion ceiling.
func (e *Engine) MaxExpansion() float64 {
	return e.cfg.MaxExpansion
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.cfg.Logf != nil {
		e.cfg.Logf(format, args...)
	}
}
