package slide

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-slide/internal/config"
	platformcore "github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide/core"
)

var directionActions = []struct {
	action platformcore.Action
	dir    core.Direction
}{
	{platformcore.ActionUp, core.DirUp},
	{platformcore.ActionDown, core.DirDown},
	{platformcore.ActionLeft, core.DirLeft},
	{platformcore.ActionRight, core.DirRight},
}

// Game wraps a Loop for a front end: it maps input frames to session
// operations, advances the clock once per step and draws the board.
type Game struct {
	cfg      config.SlideConfig
	loop     *Loop
	logger   *log.Logger
	recorder Recorder

	screenW  int
	screenH  int
	tickRate int
	tick     uint64
	paused   bool
	tooSmall bool
	layout   boardLayout
	runID    string
}

// New creates a game for cfg. Call Reset before the first Step.
func New(cfg config.SlideConfig) *Game {
	return &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "slide"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Slide"
}

// SetLogger sets the logger used for transitions. nil silences logging.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// SetRecorder sets where cleared levels and finished runs are saved.
func (g *Game) SetRecorder(r Recorder) {
	g.recorder = r
}

// Config returns the game configuration.
func (g *Game) Config() config.SlideConfig {
	return g.cfg
}

// Loop returns the underlying session loop.
func (g *Game) Loop() *Loop {
	return g.loop
}

// Reset creates a fresh Idle session sized for cfg's screen.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.tick = 0
	g.paused = false
	g.runID = ""
	g.loop = NewLoop(g.cfg, rand.New(rand.NewSource(rc.Seed)))
	g.updateLayout()
}

// Resize adapts the layout to a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.updateLayout()
}

// Step processes one frame of input and advances the clock by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if in.Has(platformcore.ActionQuit) {
		g.Abandon()
		return platformcore.StepResult{State: g.State(), Quit: true}
	}

	s := g.loop.Session()
	if in.Has(platformcore.ActionPause) && g.running() {
		g.paused = !g.paused
	}

	g.updateLayout()
	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	switch s.State {
	case StateIdle, StateTimedOut:
		if in.Has(platformcore.ActionConfirm) || in.Has(platformcore.ActionRestart) {
			g.start()
		}
	default:
		if in.Has(platformcore.ActionRestart) {
			g.endRun(EndRestart)
			g.start()
		}
	}

	if s.AcceptsMoves() {
		for _, da := range directionActions {
			if in.Has(da.action) {
				g.loop.SlideToward(da.dir)
			}
		}
		for _, p := range in.Taps {
			if idx, ok := g.TileAt(p.X, p.Y); ok {
				g.loop.RequestMove(idx)
			}
		}
	}

	g.loop.Tick(1 / float64(g.tickRate))
	g.drainEvents()
	g.updateLayout()

	return platformcore.StepResult{State: g.State()}
}

// State returns the summary the platform shows and persists.
func (g *Game) State() platformcore.GameState {
	if g.loop == nil {
		return platformcore.GameState{}
	}
	s := g.loop.Session()
	return platformcore.GameState{
		Score:    s.Cleared,
		Level:    s.Level,
		GameOver: s.State == StateTimedOut,
		Paused:   g.paused,
	}
}

// Abandon ends a run in progress, recording it as quit.
func (g *Game) Abandon() {
	if g.loop == nil || !g.running() {
		return
	}
	g.endRun(EndQuit)
	g.loop.Reset()
	g.drainEvents()
}

// TileAt maps a screen position to the grid cell drawn there.
func (g *Game) TileAt(x, y int) (int, bool) {
	if g.tooSmall || g.loop == nil {
		return 0, false
	}
	return g.layout.cellAt(x, y)
}

// running reports whether a run is in progress.
func (g *Game) running() bool {
	switch g.loop.Session().State {
	case StateShuffling, StatePlaying, StateLevelComplete:
		return true
	}
	return false
}

func (g *Game) start() {
	g.runID = uuid.NewString()
	g.paused = false
	g.loop.Start()
	g.logger.Info("run started", "run", g.runID, "dimension", dimensionLabel(g.loop.Session().Dimension))
}

func (g *Game) updateLayout() {
	if g.loop == nil {
		return
	}
	g.layout, g.tooSmall = computeLayout(g.loop.Session().Dimension, g.screenW, g.screenH)
}

func (g *Game) drainEvents() {
	for _, e := range g.loop.Events() {
		g.handleEvent(e)
	}
}

func (g *Game) handleEvent(e Event) {
	s := g.loop.Session()
	variant := g.cfg.Variant(e.Level).Name

	switch e.State {
	case StateShuffling:
		g.logger.Debug("shuffling", "level", e.Level+1, "variant", variant, "dimension", dimensionLabel(e.Dimension))
	case StatePlaying:
		g.logger.Debug("level started", "level", e.Level+1, "time", FormatClock(e.Remaining))
	case StateLevelComplete:
		seconds := s.Starting - e.Remaining
		g.logger.Info("completed level",
			"level", e.Level+1,
			"variant", variant,
			"dimension", dimensionLabel(e.Dimension),
			"moves", e.Moves,
			"time", FormatClock(seconds),
		)
		if g.recorder != nil {
			err := g.recorder.RecordClear(ClearRecord{
				RunID:     g.runID,
				Level:     e.Level,
				Variant:   variant,
				Dimension: e.Dimension,
				Moves:     e.Moves,
				Seconds:   seconds,
			})
			if err != nil {
				g.logger.Error("failed to record clear", "err", err)
			}
		}
	case StateTimedOut:
		g.logger.Warn("out of time", "level", e.Level+1, "cleared", s.Cleared)
		g.endRun(EndTimeout)
	}
}

// endRun records the current run. It runs before the session is reset so
// the totals are still intact.
func (g *Game) endRun(reason string) {
	if g.runID == "" {
		return
	}
	s := g.loop.Session()
	g.logger.Info("run ended", "run", g.runID, "reason", reason, "cleared", s.Cleared)
	if g.recorder != nil {
		err := g.recorder.RecordRun(RunRecord{
			RunID:     g.runID,
			Cleared:   s.Cleared,
			Level:     s.Level,
			Dimension: s.Dimension,
			Reason:    reason,
		})
		if err != nil {
			g.logger.Error("failed to record run", "err", err)
		}
	}
	g.runID = ""
}

func dimensionLabel(n int) string {
	return fmt.Sprintf("%dx%d", n, n)
}
