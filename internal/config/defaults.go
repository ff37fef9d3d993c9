package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// Default returns the default game configuration.
// Must stay in sync with defaults/memory.yaml.
func Default() Config {
	return Config{
		Animation: AnimationConfig{
			FlipRate:  8.0,
			MatchRate: 4.0,
		},
		Rules: RulesConfig{
			MismatchDelay: 1.0,
		},
		Theme: "classic",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}
