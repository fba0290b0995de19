package slide

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Tick      uint64
	State     State
	Level     int
	Variant   string
	Dimension int
	Remaining float64
	Moves     int
	Cleared   int
	Paused    bool
	TooSmall  bool
	Cells     []int // nil while there is no grid
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.loop.Session()
	snap := Snapshot{
		Tick:      g.tick,
		State:     s.State,
		Level:     s.Level,
		Variant:   g.cfg.Variant(s.Level).Name,
		Dimension: s.Dimension,
		Remaining: s.Remaining,
		Moves:     s.Moves,
		Cleared:   s.Cleared,
		Paused:    g.paused,
		TooSmall:  g.tooSmall,
	}
	if s.Grid != nil {
		snap.Cells = s.Grid.Cells()
	}
	return snap
}
