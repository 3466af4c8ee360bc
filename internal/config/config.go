// Package config provides YAML-based configuration loading and difficulty
// presets for the scoopstack game.
package config

import "scoopstack/internal/session"

// GameConfig is the on-disk configuration for a scoopstack run.
type GameConfig struct {
	Session session.Config `yaml:"session"`
}

// Validate checks every section of the configuration.
func (c GameConfig) Validate() error {
	return c.Session.Validate()
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyRelaxed DifficultyPreset = "relaxed"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyExam    DifficultyPreset = "exam"
)

// ValidPreset reports whether the preset is a known difficulty name.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyRelaxed, DifficultyNormal, DifficultyExam:
		return true
	}
	return false
}

// ApplyPreset adjusts the session tuning for a difficulty preset.
// Normal keeps the loaded values untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyRelaxed:
		cfg.Session.CapacityUnits = 30
		cfg.Session.InitialInterval = 30.0
		cfg.Session.RampPercent = 5.0
		cfg.Session.SprintProbability = 0.3
	case DifficultyExam:
		cfg.Session.CapacityUnits = 14
		cfg.Session.InitialInterval = 15.0
		cfg.Session.RampPercent = 12.0
		cfg.Session.SprintProbability = 0.7
	}
}
