package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if fromYAML != Default() {
		t.Errorf("embedded defaults %+v differ from hardcoded defaults %+v", fromYAML, Default())
	}
}

func TestNormalizeFillsZeroValues(t *testing.T) {
	var cfg Config
	cfg.Normalize()

	def := Default()
	if cfg != def {
		t.Errorf("Normalize on zero config = %+v, expected defaults %+v", cfg, def)
	}
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	cfg := Config{
		Animation: AnimationConfig{FlipRate: 12.0, MatchRate: 2.0},
		Rules:     RulesConfig{MismatchDelay: 0.5},
		Theme:     "shapes",
	}
	cfg.Normalize()

	if cfg.Animation.FlipRate != 12.0 || cfg.Animation.MatchRate != 2.0 {
		t.Error("Normalize must not touch positive animation rates")
	}
	if cfg.Rules.MismatchDelay != 0.5 {
		t.Error("Normalize must not touch a positive mismatch delay")
	}
	if cfg.Theme != "shapes" {
		t.Error("Normalize must not touch a non-empty theme")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("animation:\n  flip_rate: 16.0\nrules:\n  mismatch_delay: 2.0\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Animation.FlipRate != 16.0 {
		t.Errorf("flip_rate = %v, expected 16.0", cfg.Animation.FlipRate)
	}
	if cfg.Rules.MismatchDelay != 2.0 {
		t.Errorf("mismatch_delay = %v, expected 2.0", cfg.Rules.MismatchDelay)
	}
	// Unset fields are normalized to defaults.
	if cfg.Animation.MatchRate != Default().Animation.MatchRate {
		t.Errorf("match_rate = %v, expected default %v", cfg.Animation.MatchRate, Default().Animation.MatchRate)
	}
	if cfg.Theme != Default().Theme {
		t.Errorf("theme = %q, expected default %q", cfg.Theme, Default().Theme)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for an explicit path that does not exist")
	}
}
