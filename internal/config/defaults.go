package config

import (
	_ "embed"
)

//go:embed defaults/slide.yaml
var defaultSlideYAML []byte

// DefaultSlideConfig returns the built-in configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultSlideConfig() SlideConfig {
	return SlideConfig{
		Timer: TimerConfig{
			StartingTime: 300,
		},
		Grid: GridConfig{
			InitialDimension: 4,
			Growth:           1,
			WrapPolicy:       WrapCarry,
		},
		Delays: DelayConfig{
			Shuffle:       0.9,
			LevelComplete: 1.0,
		},
		Levels: []LevelVariant{
			{Name: "Lagoon", Palette: []string{"cyan", "bright_cyan", "blue", "bright_blue"}},
			{Name: "Ember", Palette: []string{"red", "orange", "yellow", "bright_yellow"}},
			{Name: "Meadow", Palette: []string{"green", "bright_green", "yellow", "cyan"}},
			{Name: "Dusk", Palette: []string{"magenta", "bright_magenta", "blue", "gray"}},
		},
	}
}
