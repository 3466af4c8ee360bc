// Package session implements the game's state machine: scoop placement
// cadence, the sprint sub-machine, answer resolution, and win/loss
// transitions. It is pure simulation code driven by tick deltas; it never
// reads the wall clock, renders, or plays audio.
package session

import "fmt"

// Config holds all tunable session parameters. It is loaded from YAML by
// the config package and validated once at session construction; the core
// never rejects values mid-tick.
type Config struct {
	// CapacityUnits is the ledger pressure above which the session is lost.
	CapacityUnits int `yaml:"capacity_units"`

	// InitialInterval is the starting scoop placement interval in seconds.
	InitialInterval float64 `yaml:"initial_interval"`

	// MinInterval is the floor the ramp can never shrink the interval below.
	MinInterval float64 `yaml:"min_interval"`

	// RampEvery is how often (seconds) the interval shrinks.
	RampEvery float64 `yaml:"ramp_every"`

	// RampPercent is the percentage the interval shrinks by on each ramp.
	RampPercent float64 `yaml:"ramp_percent"`

	// SprintProbability is the chance a sprint starts when the score ends
	// in 5 at a placement or correct answer.
	SprintProbability float64 `yaml:"sprint_probability"`

	// BurstCount is the number of normal equations placed during a sprint
	// burst phase.
	BurstCount int `yaml:"burst_count"`

	// CountdownSeconds is the length of the sprint's presentational
	// countdown window.
	CountdownSeconds float64 `yaml:"countdown_seconds"`

	// GiantBaseProbability is the floor giant probability once the score
	// reaches 50.
	GiantBaseProbability float64 `yaml:"giant_base_probability"`

	// GiantProbabilityStep is added to the giant probability on each sprint
	// start once the sprint counter reaches GiantSprintThreshold.
	GiantProbabilityStep float64 `yaml:"giant_probability_step"`

	// GiantMaxProbability caps the giant probability.
	GiantMaxProbability float64 `yaml:"giant_max_probability"`

	// GiantSprintThreshold is the sprint count after which normal
	// placements may randomly come out giant.
	GiantSprintThreshold int `yaml:"giant_sprint_threshold"`

	// WinScore is the score at which the session is won.
	WinScore int `yaml:"win_score"`

	// Invincible disables the capacity limit and makes every submission
	// on an outstanding frame count as correct. Debug/practice mode.
	Invincible bool `yaml:"invincible"`
}

// DefaultConfig returns the standard game tuning.
func DefaultConfig() Config {
	return Config{
		CapacityUnits:        20,
		InitialInterval:      20.0,
		MinInterval:          0.5,
		RampEvery:            15.0,
		RampPercent:          10.0,
		SprintProbability:    0.5,
		BurstCount:           4,
		CountdownSeconds:     3.0,
		GiantBaseProbability: 0.1,
		GiantProbabilityStep: 0.1,
		GiantMaxProbability:  0.3,
		GiantSprintThreshold: 2,
		WinScore:             120,
	}
}

// Validate rejects configurations the state machine cannot run on.
func (c Config) Validate() error {
	if c.CapacityUnits <= 0 {
		return fmt.Errorf("session: capacity_units must be positive, got %d", c.CapacityUnits)
	}
	if c.WinScore <= 0 {
		return fmt.Errorf("session: win_score must be positive, got %d", c.WinScore)
	}
	if c.InitialInterval <= 0 {
		return fmt.Errorf("session: initial_interval must be positive, got %v", c.InitialInterval)
	}
	if c.MinInterval <= 0 || c.MinInterval > c.InitialInterval {
		return fmt.Errorf("session: min_interval must be in (0, initial_interval], got %v", c.MinInterval)
	}
	if c.RampEvery <= 0 {
		return fmt.Errorf("session: ramp_every must be positive, got %v", c.RampEvery)
	}
	if c.RampPercent < 0 || c.RampPercent >= 100 {
		return fmt.Errorf("session: ramp_percent must be in [0, 100), got %v", c.RampPercent)
	}
	if c.SprintProbability < 0 || c.SprintProbability > 1 {
		return fmt.Errorf("session: sprint_probability must be in [0, 1], got %v", c.SprintProbability)
	}
	if c.BurstCount <= 0 {
		return fmt.Errorf("session: burst_count must be positive, got %d", c.BurstCount)
	}
	if c.CountdownSeconds < 0 {
		return fmt.Errorf("session: countdown_seconds must not be negative, got %v", c.CountdownSeconds)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"giant_base_probability", c.GiantBaseProbability},
		{"giant_probability_step", c.GiantProbabilityStep},
		{"giant_max_probability", c.GiantMaxProbability},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("session: %s must be in [0, 1], got %v", p.name, p.value)
		}
	}
	if c.GiantSprintThreshold < 0 {
		return fmt.Errorf("session: giant_sprint_threshold must not be negative, got %d", c.GiantSprintThreshold)
	}
	return nil
}
