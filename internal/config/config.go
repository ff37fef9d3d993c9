// Package config provides YAML-based configuration loading for the
// memory-match game: animation rates, the mismatch delay, and theme selection.
package config

// Config contains all tunable game parameters.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Rules     RulesConfig     `yaml:"rules"`
	Theme     string          `yaml:"theme"`
}

// AnimationConfig defines animation speeds in progress units per second.
type AnimationConfig struct {
	FlipRate  float64 `yaml:"flip_rate"`  // hidden -> revealed flip
	MatchRate float64 `yaml:"match_rate"` // post-match highlight fade
}

// RulesConfig defines gameplay timing parameters.
type RulesConfig struct {
	MismatchDelay float64 `yaml:"mismatch_delay"` // seconds mismatched cards stay shown
}

// Normalize replaces non-positive values with defaults so a sparse or
// hand-edited config file cannot stall animations or the mismatch timer.
func (c *Config) Normalize() {
	def := Default()
	if c.Animation.FlipRate <= 0 {
		c.Animation.FlipRate = def.Animation.FlipRate
	}
	if c.Animation.MatchRate <= 0 {
		c.Animation.MatchRate = def.Animation.MatchRate
	}
	if c.Rules.MismatchDelay <= 0 {
		c.Rules.MismatchDelay = def.Rules.MismatchDelay
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
}
