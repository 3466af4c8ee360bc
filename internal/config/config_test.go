package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultScoopstackYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, DefaultGameConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := []byte("session:\n" +
		"  capacity_units: 12\n" +
		"  initial_interval: 10.0\n" +
		"  min_interval: 1.0\n" +
		"  ramp_every: 5.0\n" +
		"  ramp_percent: 20.0\n" +
		"  sprint_probability: 1.0\n" +
		"  burst_count: 2\n" +
		"  countdown_seconds: 1.0\n" +
		"  giant_base_probability: 0.2\n" +
		"  giant_probability_step: 0.05\n" +
		"  giant_max_probability: 0.5\n" +
		"  giant_sprint_threshold: 1\n" +
		"  win_score: 30\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Session.CapacityUnits != 12 || cfg.Session.WinScore != 30 {
		t.Errorf("loaded config %+v", cfg.Session)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("session: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("session:\n  capacity_units: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected error for invalid values")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultGameConfig()

	relaxed := base
	ApplyPreset(&relaxed, DifficultyRelaxed)
	if relaxed.Session.InitialInterval <= base.Session.InitialInterval {
		t.Error("relaxed preset should slow placements down")
	}
	if err := relaxed.Validate(); err != nil {
		t.Errorf("relaxed preset invalid: %v", err)
	}

	exam := base
	ApplyPreset(&exam, DifficultyExam)
	if exam.Session.InitialInterval >= base.Session.InitialInterval {
		t.Error("exam preset should speed placements up")
	}
	if err := exam.Validate(); err != nil {
		t.Errorf("exam preset invalid: %v", err)
	}

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyRelaxed, DifficultyNormal, DifficultyExam} {
		if !ValidPreset(p) {
			t.Errorf("%q should be valid", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("unknown preset accepted")
	}
}
