package slide

import (
	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/games/slide/core"
)

// maxReshuffles bounds how often a shuffle that lands on the solved
// arrangement is retried.
const maxReshuffles = 8

// LevelController drives the session state machine:
//
//	Idle -> Shuffling -> Playing -> LevelComplete -> Shuffling (next level)
//	                            \-> TimedOut -> (Start) Shuffling | (Reset) Idle
//
// It reads and writes the Session passed to each call and schedules the
// shuffle and level-advance delays on the shared Scheduler.
type LevelController struct {
	cfg   config.SlideConfig
	sched *Scheduler
	rng   core.Rand
	emit  func(Event)
}

// NewLevelController creates a controller. emit receives every transition and
// may be nil.
func NewLevelController(cfg config.SlideConfig, sched *Scheduler, rng core.Rand, emit func(Event)) *LevelController {
	if emit == nil {
		emit = func(Event) {}
	}
	return &LevelController{
		cfg:   cfg,
		sched: sched,
		rng:   rng,
		emit:  emit,
	}
}

// Start cancels anything pending, restores the initial level, dimension and
// timer, and begins the first level.
func (lc *LevelController) Start(s *Session) {
	lc.sched.Cancel()
	s.resetTo(lc.cfg)
	lc.beginLevel(s)
}

// Reset cancels anything pending and returns the session to Idle.
func (lc *LevelController) Reset(s *Session) {
	lc.sched.Cancel()
	s.resetTo(lc.cfg)
	lc.emit(s.event())
}

// Complete freezes the timer, stops accepting moves and schedules the advance
// to the next level. It is a no-op unless the session is Playing.
func (lc *LevelController) Complete(s *Session) {
	if s.State != StatePlaying {
		return
	}
	s.Playing = false
	s.Shuffling = false
	s.State = StateLevelComplete
	s.Cleared++
	lc.emit(s.event())

	grid := s.Grid
	lc.sched.After(lc.cfg.Delays.LevelComplete, "advance", func() {
		if s.Grid != grid || s.State != StateLevelComplete {
			return
		}
		s.Level, s.Dimension = lc.Next(s.Level, s.Dimension)
		lc.beginLevel(s)
	})
}

// TimeOut clamps the clock to zero, cancels pending tasks and clears the grid.
// The session stays TimedOut until Start or Reset.
func (lc *LevelController) TimeOut(s *Session) {
	if s.State != StatePlaying {
		return
	}
	lc.sched.Cancel()
	s.Remaining = 0
	s.Playing = false
	s.Shuffling = false
	s.State = StateTimedOut
	s.Grid = nil
	lc.emit(s.event())
}

// Next returns the level index and grid dimension that follow a cleared
// level.
func (lc *LevelController) Next(level, dimension int) (int, int) {
	return NextLevel(lc.cfg, level, dimension)
}

// NextLevel returns the level index and grid dimension that follow level
// under cfg. The level index wraps to 0 at the variant count; the dimension
// keeps growing unless the wrap policy is reset.
func NextLevel(cfg config.SlideConfig, level, dimension int) (int, int) {
	level++
	dimension += cfg.Grid.Growth

	if n := cfg.VariantCount(); n > 0 && level >= n {
		level = 0
		if cfg.Grid.WrapPolicy == config.WrapReset {
			dimension = cfg.Grid.InitialDimension
		}
	}
	if dimension < core.MinDimension {
		dimension = core.MinDimension
	}
	return level, dimension
}

// beginLevel builds the solved grid for the current dimension, enters
// Shuffling and schedules the shuffle.
func (lc *LevelController) beginLevel(s *Session) {
	s.Grid = core.New(s.Dimension)
	s.Remaining = s.Starting
	s.Moves = 0
	s.Playing = false
	s.Shuffling = true
	s.State = StateShuffling
	lc.emit(s.event())

	grid := s.Grid
	lc.sched.After(lc.cfg.Delays.Shuffle, "shuffle", func() {
		if s.Grid != grid || s.State != StateShuffling {
			return
		}
		lc.shuffle(grid)
		s.Shuffling = false
		s.Playing = true
		s.State = StatePlaying
		lc.emit(s.event())
	})
}

// shuffle scrambles g, retrying when the result happens to be solved.
func (lc *LevelController) shuffle(g *core.Grid) {
	for i := 0; i < maxReshuffles; i++ {
		core.Shuffle(g, lc.rng)
		if !core.IsSolved(g) {
			return
		}
	}
}
