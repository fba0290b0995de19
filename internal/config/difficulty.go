package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// StartingTimeForPreset returns the per-level time limit for a preset.
// Returns 0 for presets that keep the configured value.
func StartingTimeForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 600
	case DifficultyNormal:
		return 300
	case DifficultyHard:
		return 180
	default:
		return 0
	}
}

// ApplySlidePreset modifies the config based on a difficulty preset.
// The fixed preset keeps the time limit but stops the grid from growing.
func ApplySlidePreset(cfg *SlideConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Grid.Growth = 0
		return
	}
	if t := StartingTimeForPreset(preset); t > 0 {
		cfg.Timer.StartingTime = t
	}
}
