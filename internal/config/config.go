// Package config provides YAML-based configuration loading and validation
// for the serpent simulation and its terminal driver.
package config

import (
	"fmt"

	"github.com/snakelab/serpent/internal/core"
	"github.com/snakelab/serpent/internal/grid"
)

// Config contains everything consumed at construction time: the grid surface,
// the fixed tick rate, and the entities' display colors.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Colors ColorConfig  `yaml:"colors"`
}

// GridConfig defines the playfield geometry.
type GridConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
}

// TimingConfig defines the simulation rate. Rendering frequency is the
// driver's business and intentionally not configured here.
type TimingConfig struct {
	UpdatesPerSecond int `yaml:"updates_per_second"`
}

// ColorConfig defines the pass-through display colors of the entities.
type ColorConfig struct {
	Actor  string `yaml:"actor"`
	Target string `yaml:"target"`
}

// Extent returns the grid geometry as a grid.Extent.
func (c Config) Extent() grid.Extent {
	return grid.Extent{
		Width:    c.Grid.Width,
		Height:   c.Grid.Height,
		CellSize: c.Grid.CellSize,
	}
}

// Validate checks every precondition the simulation relies on: the wrap
// arithmetic preconditions on the extent, a positive tick rate, and known
// color names.
func (c Config) Validate() error {
	if err := c.Extent().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Timing.UpdatesPerSecond <= 0 {
		return fmt.Errorf("config: updates_per_second must be positive, got %d", c.Timing.UpdatesPerSecond)
	}
	if _, err := core.ParseColor(c.Colors.Actor); err != nil {
		return fmt.Errorf("config: actor color: %w", err)
	}
	if _, err := core.ParseColor(c.Colors.Target); err != nil {
		return fmt.Errorf("config: target color: %w", err)
	}
	return nil
}

// ActorColor returns the parsed actor color. Call Validate first.
func (c Config) ActorColor() core.Color {
	color, _ := core.ParseColor(c.Colors.Actor)
	return color
}

// TargetColor returns the parsed target color. Call Validate first.
func (c Config) TargetColor() core.Color {
	color, _ := core.ParseColor(c.Colors.Target)
	return color
}
