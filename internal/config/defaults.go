package config

import (
	_ "embed"
)

//go:embed defaults/serpent.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration: a 300x300 grid of
// 15-unit cells ticking ten times per second.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:    300,
			Height:   300,
			CellSize: 15,
		},
		Timing: TimingConfig{
			UpdatesPerSecond: 10,
		},
		Colors: ColorConfig{
			Actor:  "red",
			Target: "green",
		},
	}
}
