package core

import (
	"math/rand"
	"testing"
)

// scriptedRand replays a fixed sequence of picks, wrapping when exhausted.
type scriptedRand struct {
	picks []int
	pos   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.picks[r.pos%len(r.picks)] % n
	r.pos++
	return v
}

func TestShuffleBudget(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		if ShuffleBudget(n) != n*n*n {
			t.Errorf("ShuffleBudget(%d) = %d, want %d", n, ShuffleBudget(n), n*n*n)
		}
	}
}

func TestShuffleChainsLegalMoves(t *testing.T) {
	for _, n := range []int{2, 3, 4, 6} {
		g := New(n)
		moves := Shuffle(g, rand.New(rand.NewSource(int64(n))))

		if len(moves) != ShuffleBudget(n) {
			t.Errorf("N=%d: %d moves, want %d", n, len(moves), ShuffleBudget(n))
		}
		if err := g.Validate(); err != nil {
			t.Errorf("N=%d: shuffled grid invalid: %v", n, err)
		}

		// Each move must start where the previous one left the empty slot.
		for i := 1; i < len(moves); i++ {
			if moves[i].To != moves[i-1].From {
				t.Fatalf("N=%d: move %d targets %d, empty was at %d", n, i, moves[i].To, moves[i-1].From)
			}
		}
	}
}

func TestShuffleIsSolvable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := New(4)
		moves := Shuffle(g, rand.New(rand.NewSource(seed)))

		replay := g.Clone()
		Unwind(replay, moves)
		if !IsSolved(replay) {
			t.Errorf("seed %d: unwinding the shuffle did not solve the grid:\n%s", seed, replay)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := New(5)
	b := New(5)
	Shuffle(a, rand.New(rand.NewSource(42)))
	Shuffle(b, rand.New(rand.NewSource(42)))

	if !a.Equal(b) {
		t.Errorf("same seed produced different grids:\n%s\n\n%s", a, b)
	}

	c := New(5)
	Shuffle(c, rand.New(rand.NewSource(43)))
	if a.Equal(c) {
		t.Error("different seeds should normally produce different grids")
	}
}

func TestShuffleNeverUndoesPreviousMove(t *testing.T) {
	g := New(4)
	moves := Shuffle(g, rand.New(rand.NewSource(99)))

	for i := 1; i < len(moves); i++ {
		if moves[i].From == moves[i-1].To {
			t.Fatalf("move %d (%+v) undoes move %d (%+v)", i, moves[i], i-1, moves[i-1])
		}
	}
}

func TestShuffleSkipsLastEmptyPosition(t *testing.T) {
	// 2x2, empty at 3. Picks: 2 slides right (empty -> 2), then 3 is the
	// previous empty position and must be skipped, then 0 slides down.
	g := New(2)
	rng := &scriptedRand{picks: []int{2, 3, 0, 1, 3, 2, 0, 1, 3, 2}}
	moves := Shuffle(g, rng)

	if len(moves) < 2 {
		t.Fatalf("expected at least two moves, got %d", len(moves))
	}
	if moves[0].From != 2 || moves[0].To != 3 {
		t.Errorf("first move = %+v, want 2->3", moves[0])
	}
	if moves[1].From != 0 || moves[1].To != 2 {
		t.Errorf("second move = %+v, want 0->2", moves[1])
	}
}

func TestUnwindStopsOnForeignMoves(t *testing.T) {
	g := New(3)
	// A move list that does not describe g's history.
	Unwind(g, []Move{{From: 0, To: 1, Dir: DirRight}})
	if !IsSolved(g) {
		t.Error("Unwind should ignore moves that are not legal on the grid")
	}
}
