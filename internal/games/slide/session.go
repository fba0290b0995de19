package slide

import (
	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/games/slide/core"
)

// Session is the mutable state of one play session. It owns at most one grid
// at a time; the grid is nil while Idle or TimedOut.
// A Session is owned by a single Loop and is not safe for concurrent use.
type Session struct {
	Level     int     // Level index, wraps at the variant count
	Dimension int     // Current grid side length
	Starting  float64 // Time limit per level, in seconds
	Remaining float64 // Seconds left on the current level
	Playing   bool    // Timer running and moves accepted
	Shuffling bool    // A shuffle is pending or running
	State     State
	Grid      *core.Grid

	Moves   int // Accepted moves on the current level
	Cleared int // Levels cleared since the last start
}

// NewSession creates an Idle session with the configured initial values.
func NewSession(cfg config.SlideConfig) *Session {
	s := &Session{}
	s.resetTo(cfg)
	return s
}

// resetTo restores the initial values for cfg and drops the grid.
func (s *Session) resetTo(cfg config.SlideConfig) {
	s.Level = 0
	s.Dimension = cfg.Grid.InitialDimension
	if s.Dimension < core.MinDimension {
		s.Dimension = core.MinDimension
	}
	s.Starting = cfg.Timer.StartingTime
	s.Remaining = s.Starting
	s.Playing = false
	s.Shuffling = false
	s.State = StateIdle
	s.Grid = nil
	s.Moves = 0
	s.Cleared = 0
}

// AcceptsMoves reports whether move requests are currently processed.
func (s *Session) AcceptsMoves() bool {
	return s.Playing && !s.Shuffling && s.Grid != nil
}

// Elapsed returns the seconds spent on the current level.
func (s *Session) Elapsed() float64 {
	return s.Starting - s.Remaining
}

func (s *Session) event() Event {
	return Event{
		State:     s.State,
		Level:     s.Level,
		Dimension: s.Dimension,
		Remaining: s.Remaining,
		Moves:     s.Moves,
	}
}
