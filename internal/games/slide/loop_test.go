package slide

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/games/slide/core"
)

// testConfig uses delays and a clock that add up exactly in binary floating
// point so tests can tick to precise deadlines.
func testConfig() config.SlideConfig {
	return config.SlideConfig{
		Timer:  config.TimerConfig{StartingTime: 300},
		Grid:   config.GridConfig{InitialDimension: 3, Growth: 1, WrapPolicy: config.WrapCarry},
		Delays: config.DelayConfig{Shuffle: 0.5, LevelComplete: 1},
		Levels: []config.LevelVariant{
			{Name: "One", Palette: []string{"cyan"}},
			{Name: "Two", Palette: []string{"red"}},
		},
	}
}

// playingLoop returns a loop that has started and finished its first shuffle.
func playingLoop(t *testing.T, cfg config.SlideConfig, seed int64) *Loop {
	t.Helper()
	l := NewLoop(cfg, rand.New(rand.NewSource(seed)))
	l.Start()
	l.Tick(cfg.Delays.Shuffle)
	if l.Session().State != StatePlaying {
		t.Fatalf("state = %v after shuffle delay, expected Playing", l.Session().State)
	}
	l.Events()
	return l
}

// oneMoveFromSolved replaces the session grid with a 3x3 grid whose last tile
// sits right of the empty slot.
func oneMoveFromSolved(t *testing.T, l *Loop) {
	t.Helper()
	g, err := core.FromCells(3, []int{0, 1, 2, 3, 4, 5, 6, 8, 7})
	if err != nil {
		t.Fatalf("FromCells() failed: %v", err)
	}
	l.Session().Grid = g
}

func countState(events []Event, state State) int {
	n := 0
	for _, e := range events {
		if e.State == state {
			n++
		}
	}
	return n
}

func TestNewLoopIsIdle(t *testing.T) {
	l := NewLoop(testConfig(), rand.New(rand.NewSource(1)))
	s := l.Session()

	if s.State != StateIdle || s.Playing || s.Shuffling {
		t.Errorf("new session = %+v, expected Idle", s)
	}
	if s.Grid != nil {
		t.Error("Idle session should have no grid")
	}
	if s.Remaining != 300 || s.Dimension != 3 || s.Level != 0 {
		t.Errorf("initial values = (%v, %d, %d), expected (300, 3, 0)", s.Remaining, s.Dimension, s.Level)
	}

	l.Tick(10)
	if s.Remaining != 300 {
		t.Errorf("Idle clock moved to %v", s.Remaining)
	}
}

func TestStartShufflesAfterDelay(t *testing.T) {
	cfg := testConfig()
	l := NewLoop(cfg, rand.New(rand.NewSource(7)))
	l.Start()
	s := l.Session()

	if s.State != StateShuffling || !s.Shuffling || s.Playing {
		t.Fatalf("after Start state = %v, expected Shuffling", s.State)
	}
	if !core.IsSolved(s.Grid) {
		t.Error("grid should be solved until the shuffle runs")
	}
	if l.RequestMove(s.Grid.EmptyIndex() - 1) {
		t.Error("move accepted while Shuffling")
	}

	l.Tick(0.25)
	if s.State != StateShuffling {
		t.Fatalf("shuffle ran early, state = %v", s.State)
	}
	if s.Remaining != cfg.Timer.StartingTime {
		t.Errorf("clock ran while Shuffling: %v", s.Remaining)
	}

	l.Tick(0.25)
	if s.State != StatePlaying || !s.Playing || s.Shuffling {
		t.Fatalf("state = %v after shuffle delay, expected Playing", s.State)
	}
	if core.IsSolved(s.Grid) {
		t.Error("grid still solved after shuffle")
	}
	if err := s.Grid.Validate(); err != nil {
		t.Errorf("shuffled grid invalid: %v", err)
	}

	events := l.Events()
	if len(events) != 2 || events[0].State != StateShuffling || events[1].State != StatePlaying {
		t.Errorf("events = %+v, expected Shuffling then Playing", events)
	}
}

func TestRequestMoveScenarios(t *testing.T) {
	tests := []struct {
		name  string
		tile  int
		moved bool
		empty int
	}{
		{"slide left into gap", 8, true, 8},
		{"slide down into gap", 4, true, 4},
		{"slide right into gap", 6, true, 6},
		{"not adjacent", 0, false, 7},
		{"out of range", 9, false, 7},
		{"negative index", -1, false, 7},
		{"the gap itself", 7, false, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := playingLoop(t, testConfig(), 3)
			oneMoveFromSolved(t, l)

			if got := l.RequestMove(tc.tile); got != tc.moved {
				t.Errorf("RequestMove(%d) = %v, expected %v", tc.tile, got, tc.moved)
			}
			if got := l.Session().Grid.EmptyIndex(); got != tc.empty {
				t.Errorf("empty at %d, expected %d", got, tc.empty)
			}
			wantMoves := 0
			if tc.moved {
				wantMoves = 1
			}
			if l.Session().Moves != wantMoves {
				t.Errorf("Moves = %d, expected %d", l.Session().Moves, wantMoves)
			}
		})
	}
}

func TestRightBoundaryDoesNotWrap(t *testing.T) {
	l := playingLoop(t, testConfig(), 3)
	// Empty at index 3 (row 1, col 0); tile at index 2 is on the row above's
	// last column, which is one index away but not adjacent.
	g, err := core.FromCells(3, []int{0, 1, 2, 8, 3, 4, 5, 6, 7})
	if err != nil {
		t.Fatal(err)
	}
	l.Session().Grid = g

	if l.RequestMove(2) {
		t.Error("tile in the last column slid right onto the next row")
	}
	if !l.RequestMove(4) {
		t.Error("left neighbour of the gap should slide")
	}
}

func TestSlideToward(t *testing.T) {
	tests := []struct {
		dir   core.Direction
		moved bool
	}{
		{core.DirLeft, true},
		{core.DirRight, true},
		{core.DirDown, true},
		{core.DirUp, false},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			l := playingLoop(t, testConfig(), 5)
			oneMoveFromSolved(t, l)

			if got := l.SlideToward(tc.dir); got != tc.moved {
				t.Errorf("SlideToward(%v) = %v, expected %v", tc.dir, got, tc.moved)
			}
		})
	}
}

func TestLevelCompleteAndAdvance(t *testing.T) {
	cfg := testConfig()
	l := playingLoop(t, cfg, 11)
	oneMoveFromSolved(t, l)
	s := l.Session()

	l.Tick(1)
	remaining := s.Remaining

	if !l.RequestMove(8) {
		t.Fatal("solving move rejected")
	}
	if s.State != StateLevelComplete || s.Playing {
		t.Fatalf("state = %v after solving, expected LevelComplete", s.State)
	}
	if s.Cleared != 1 {
		t.Errorf("Cleared = %d, expected 1", s.Cleared)
	}
	if l.RequestMove(7) {
		t.Error("move accepted after the level was complete")
	}

	l.Tick(0.5)
	if s.Remaining != remaining {
		t.Errorf("clock ran after completion: %v -> %v", remaining, s.Remaining)
	}
	if s.State != StateLevelComplete {
		t.Fatalf("advanced before the level-complete delay, state = %v", s.State)
	}

	l.Tick(0.5)
	if s.State != StateShuffling {
		t.Fatalf("state = %v after delay, expected Shuffling", s.State)
	}
	if s.Level != 1 || s.Dimension != 4 {
		t.Errorf("next level = (%d, %d), expected (1, 4)", s.Level, s.Dimension)
	}
	if s.Grid.Dimension() != 4 || !core.IsSolved(s.Grid) {
		t.Error("next level should start from a solved 4x4 grid")
	}
	if s.Remaining != cfg.Timer.StartingTime || s.Moves != 0 {
		t.Errorf("level start = (%v, %d), expected fresh clock and no moves", s.Remaining, s.Moves)
	}

	l.Tick(0.5)
	if s.State != StatePlaying {
		t.Errorf("state = %v, expected Playing on level 2", s.State)
	}

	events := l.Events()
	if countState(events, StateLevelComplete) != 1 {
		t.Errorf("expected one LevelComplete event, got %+v", events)
	}
	for _, e := range events {
		if e.State == StateLevelComplete && (e.Moves != 1 || e.Level != 0 || e.Dimension != 3) {
			t.Errorf("LevelComplete event = %+v", e)
		}
	}
}

func TestTimeOutOnce(t *testing.T) {
	cfg := testConfig()
	l := playingLoop(t, cfg, 2)
	s := l.Session()

	for i := 0; i < 301; i++ {
		l.Tick(1)
	}

	if s.Remaining != 0 {
		t.Errorf("Remaining = %v, expected clamp to 0", s.Remaining)
	}
	if s.State != StateTimedOut || s.Playing || s.Shuffling {
		t.Errorf("state = %v, expected TimedOut", s.State)
	}
	if s.Grid != nil {
		t.Error("grid should be cleared on timeout")
	}
	if n := countState(l.Events(), StateTimedOut); n != 1 {
		t.Errorf("TimedOut emitted %d times, expected 1", n)
	}
	if l.RequestMove(0) {
		t.Error("move accepted after timeout")
	}
}

func TestTimeOutClampsOvershoot(t *testing.T) {
	l := playingLoop(t, testConfig(), 2)
	l.Tick(299.5)
	l.Tick(2)

	if l.Session().Remaining != 0 {
		t.Errorf("Remaining = %v, expected 0", l.Session().Remaining)
	}
}

func TestStartAfterTimeOut(t *testing.T) {
	cfg := testConfig()
	l := playingLoop(t, cfg, 4)
	l.Tick(cfg.Timer.StartingTime)

	l.Start()
	s := l.Session()
	if s.State != StateShuffling {
		t.Fatalf("state = %v, expected Shuffling", s.State)
	}
	if s.Remaining != cfg.Timer.StartingTime || s.Level != 0 || s.Cleared != 0 {
		t.Errorf("restart kept old values: %+v", s)
	}
}

func TestResetCancelsPending(t *testing.T) {
	l := NewLoop(testConfig(), rand.New(rand.NewSource(9)))
	l.Start()
	if l.Scheduler().Pending() != 1 {
		t.Fatalf("Pending() = %d after Start, expected 1", l.Scheduler().Pending())
	}

	l.Reset()
	if l.Scheduler().Pending() != 0 {
		t.Errorf("Pending() = %d after Reset", l.Scheduler().Pending())
	}

	l.Tick(5)
	s := l.Session()
	if s.State != StateIdle || s.Grid != nil {
		t.Errorf("state = %v after Reset and ticks, expected Idle without grid", s.State)
	}
}

func TestRestartDuringShuffleKeepsOneTask(t *testing.T) {
	l := NewLoop(testConfig(), rand.New(rand.NewSource(9)))
	l.Start()
	first := l.Session().Grid
	l.Start()

	if l.Scheduler().Pending() != 1 {
		t.Errorf("Pending() = %d, expected the old shuffle to be cancelled", l.Scheduler().Pending())
	}
	if l.Session().Grid == first {
		t.Error("Start should build a new grid")
	}
}

func TestStaleAdvanceDoesNotTouchNewGrid(t *testing.T) {
	l := playingLoop(t, testConfig(), 6)
	oneMoveFromSolved(t, l)
	l.RequestMove(8)

	s := l.Session()
	replacement := core.New(3)
	s.Grid = replacement
	l.Tick(1)

	if s.Level != 0 || s.Grid != replacement || s.State != StateLevelComplete {
		t.Errorf("advance task acted on a grid it did not schedule for: level %d, state %v", s.Level, s.State)
	}
}

func TestRandomRequestsKeepGridValid(t *testing.T) {
	l := playingLoop(t, testConfig(), 42)
	s := l.Session()
	rng := rand.New(rand.NewSource(99))

	accepted := 0
	for i := 0; i < 2000 && s.State == StatePlaying; i++ {
		before := s.Grid.Clone()
		tile := rng.Intn(s.Grid.Len()+2) - 1
		moved := l.RequestMove(tile)
		if moved {
			accepted++
			if s.Grid.At(before.EmptyIndex()) != before.At(tile) {
				t.Fatalf("tile %d did not land in the old gap", tile)
			}
		} else if s.State == StatePlaying && !s.Grid.Equal(before) {
			t.Fatalf("rejected move changed the grid")
		}
		if err := s.Grid.Validate(); err != nil {
			t.Fatalf("grid invalid after request %d: %v", i, err)
		}
	}
	if s.Moves != accepted {
		t.Errorf("Moves = %d, accepted %d", s.Moves, accepted)
	}
}

func TestNextLevel(t *testing.T) {
	tests := []struct {
		name      string
		policy    config.WrapPolicy
		level     int
		dimension int
		wantLevel int
		wantDim   int
	}{
		{"first to second", config.WrapCarry, 0, 3, 1, 4},
		{"wrap keeps growing", config.WrapCarry, 1, 4, 0, 5},
		{"wrap resets dimension", config.WrapReset, 1, 4, 0, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Grid.WrapPolicy = tc.policy
			lc := NewLevelController(cfg, NewScheduler(), rand.New(rand.NewSource(1)), nil)

			level, dim := lc.Next(tc.level, tc.dimension)
			if level != tc.wantLevel || dim != tc.wantDim {
				t.Errorf("Next(%d, %d) = (%d, %d), expected (%d, %d)",
					tc.level, tc.dimension, level, dim, tc.wantLevel, tc.wantDim)
			}
		})
	}
}

func TestFixedGrowthKeepsDimension(t *testing.T) {
	cfg := testConfig()
	cfg.Grid.Growth = 0
	lc := NewLevelController(cfg, NewScheduler(), rand.New(rand.NewSource(1)), nil)

	if _, dim := lc.Next(0, 3); dim != 3 {
		t.Errorf("dimension = %d with zero growth, expected 3", dim)
	}
	if level, dim := NextLevel(cfg, 1, 3); level != 0 || dim != 3 {
		t.Errorf("NextLevel(1, 3) = (%d, %d), expected (0, 3)", level, dim)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{300, "5:00"},
		{59.9, "0:59"},
		{61, "1:01"},
		{0, "0:00"},
		{-4, "0:00"},
		{3600, "60:00"},
	}
	for _, tc := range tests {
		if got := FormatClock(tc.seconds); got != tc.expected {
			t.Errorf("FormatClock(%v) = %q, expected %q", tc.seconds, got, tc.expected)
		}
	}
}

func TestStateString(t *testing.T) {
	if StateLevelComplete.String() != "LevelComplete" || State(42).String() != "Unknown" {
		t.Error("unexpected State names")
	}
}
