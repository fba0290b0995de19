// Package slide implements the sliding-tile puzzle: a timed session that
// shuffles an N×N grid, waits for the player to solve it and moves on to a
// bigger grid.
package slide

import "fmt"

// State is a phase of the session state machine.
type State int

const (
	StateIdle State = iota
	StateShuffling
	StatePlaying
	StateLevelComplete
	StateTimedOut
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateShuffling:
		return "Shuffling"
	case StatePlaying:
		return "Playing"
	case StateLevelComplete:
		return "LevelComplete"
	case StateTimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

// Event reports a state transition to collaborators (rendering, logging,
// result recording).
type Event struct {
	State     State
	Level     int     // Level index after the transition
	Dimension int     // Grid dimension after the transition
	Remaining float64 // Seconds left on the clock
	Moves     int     // Moves made on the level that just ended
}

// FormatClock renders seconds as M:SS, truncating fractions.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
