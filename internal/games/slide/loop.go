package slide

import (
	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/games/slide/core"
)

// Loop is the tick-driven orchestrator for one session. Tick and RequestMove
// must be called from the same goroutine; the Loop does no locking.
type Loop struct {
	session *Session
	sched   *Scheduler
	levels  *LevelController
	events  []Event
}

// NewLoop creates an Idle loop. rng drives every shuffle in the session.
func NewLoop(cfg config.SlideConfig, rng core.Rand) *Loop {
	l := &Loop{
		session: NewSession(cfg),
		sched:   NewScheduler(),
	}
	l.levels = NewLevelController(cfg, l.sched, rng, l.record)
	return l
}

// record queues a transition for Events.
func (l *Loop) record(e Event) {
	l.events = append(l.events, e)
}

// Session returns the live session. Collaborators must treat it as read-only.
func (l *Loop) Session() *Session {
	return l.session
}

// Scheduler returns the loop's scheduler.
func (l *Loop) Scheduler() *Scheduler {
	return l.sched
}

// Levels returns the loop's level controller.
func (l *Loop) Levels() *LevelController {
	return l.levels
}

// Start begins a new run from the first level.
func (l *Loop) Start() {
	l.levels.Start(l.session)
}

// Reset stops the run and returns to Idle.
func (l *Loop) Reset() {
	l.levels.Reset(l.session)
}

// Tick advances the session by dt seconds: the timer runs down while
// Playing (timing out at zero), then due scheduled tasks run.
func (l *Loop) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	s := l.session
	if s.Playing {
		s.Remaining -= dt
		if s.Remaining <= 0 {
			s.Remaining = 0
			l.levels.TimeOut(s)
		}
	}

	l.sched.Advance(dt)
}

// RequestMove slides the tile at cell index tile into the empty slot if it is
// adjacent. Requests outside Playing, out-of-range indices and illegal moves
// are ignored. Returns whether a tile moved.
func (l *Loop) RequestMove(tile int) bool {
	s := l.session
	if !s.AcceptsMoves() || !s.Grid.InBounds(tile) {
		return false
	}

	if _, ok := core.TryMove(s.Grid, tile); !ok {
		return false
	}
	s.Moves++

	if core.IsSolved(s.Grid) {
		l.levels.Complete(s)
	}
	return true
}

// SlideToward moves the tile that can slide in direction d, i.e. the
// neighbour on the far side of the empty slot.
func (l *Loop) SlideToward(d core.Direction) bool {
	s := l.session
	if !s.AcceptsMoves() {
		return false
	}
	source := s.Grid.EmptyIndex() - d.Offset(s.Grid.Dimension())
	return l.RequestMove(source)
}

// Events returns the transitions since the previous call and clears them.
func (l *Loop) Events() []Event {
	events := l.events
	l.events = nil
	return events
}
