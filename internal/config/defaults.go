package config

import (
	_ "embed"

	"scoopstack/internal/session"
)

//go:embed defaults/scoopstack.yaml
var defaultScoopstackYAML []byte

// DefaultGameConfig returns the hardcoded default configuration. It mirrors
// the embedded YAML and serves as the last-resort fallback.
func DefaultGameConfig() GameConfig {
	return GameConfig{Session: session.DefaultConfig()}
}

// DefaultYAML returns the embedded default YAML, used by `scoopstack config`
// to print a starting point for user edits.
func DefaultYAML() []byte {
	return defaultScoopstackYAML
}
