// Package config provides YAML-based game configuration loading and
// difficulty presets for Slide.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// SlideConfig contains all configuration for the sliding puzzle.
type SlideConfig struct {
	Timer  TimerConfig    `yaml:"timer"`
	Grid   GridConfig     `yaml:"grid"`
	Delays DelayConfig    `yaml:"delays"`
	Levels []LevelVariant `yaml:"levels"`
}

// TimerConfig defines the per-level countdown.
type TimerConfig struct {
	StartingTime float64 `yaml:"starting_time"` // Seconds
}

// GridConfig defines grid sizing and level-to-level growth.
type GridConfig struct {
	InitialDimension int        `yaml:"initial_dimension"`
	Growth           int        `yaml:"growth"`
	WrapPolicy       WrapPolicy `yaml:"wrap_policy"`
}

// DelayConfig defines the scheduled waits, in seconds.
type DelayConfig struct {
	Shuffle       float64 `yaml:"shuffle"`
	LevelComplete float64 `yaml:"level_complete"`
}

// LevelVariant is the visual theme used for one level.
// The puzzle logic only uses the number of variants.
type LevelVariant struct {
	Name    string   `yaml:"name"`
	Palette []string `yaml:"palette"`
}

// WrapPolicy controls the grid dimension when the level index wraps around.
type WrapPolicy string

const (
	// WrapCarry keeps growing the dimension after the variants are reused.
	WrapCarry WrapPolicy = "carry"
	// WrapReset returns to the initial dimension when the level index wraps.
	WrapReset WrapPolicy = "reset"
)

// Validate checks the configuration for values the game cannot run with.
func (c SlideConfig) Validate() error {
	var errs []error

	if c.Timer.StartingTime <= 0 {
		errs = append(errs, fmt.Errorf("timer.starting_time must be positive, got %v", c.Timer.StartingTime))
	}
	if c.Grid.InitialDimension < 2 {
		errs = append(errs, fmt.Errorf("grid.initial_dimension must be at least 2, got %d", c.Grid.InitialDimension))
	}
	if c.Grid.Growth < 0 {
		errs = append(errs, fmt.Errorf("grid.growth must not be negative, got %d", c.Grid.Growth))
	}
	switch c.Grid.WrapPolicy {
	case WrapCarry, WrapReset, "":
	default:
		errs = append(errs, fmt.Errorf("grid.wrap_policy must be %q or %q, got %q", WrapCarry, WrapReset, c.Grid.WrapPolicy))
	}
	if c.Delays.Shuffle < 0 || c.Delays.LevelComplete < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("at least one level variant is required"))
	}
	for i, lv := range c.Levels {
		for _, name := range lv.Palette {
			if _, ok := core.ParseColor(name); !ok {
				errs = append(errs, fmt.Errorf("levels[%d] (%s): unknown color %q", i, lv.Name, name))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// VariantCount returns the number of configured level variants.
func (c SlideConfig) VariantCount() int {
	return len(c.Levels)
}

// Variant returns the variant for a level index, wrapping when out of range.
func (c SlideConfig) Variant(level int) LevelVariant {
	if len(c.Levels) == 0 {
		return LevelVariant{Name: "Classic"}
	}
	if level < 0 {
		level = 0
	}
	return c.Levels[level%len(c.Levels)]
}
