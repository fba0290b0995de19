package core

// Rand is the random source used by Shuffle. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ShuffleBudget returns the number of legal moves a shuffle chains on an
// N-wide grid (N³).
func ShuffleBudget(n int) int {
	return n * n * n
}

// Shuffle scrambles g in place by chaining ShuffleBudget legal moves and
// returns them in the order they were applied.
//
// Each round picks a random cell and tries to slide it in every direction.
// The cell that was the empty slot before the previous accepted slide is
// skipped so that slide is never immediately undone.
// Every step is a legal move, so the result is always solvable.
func Shuffle(g *Grid, rng Rand) []Move {
	budget := ShuffleBudget(g.n)
	moves := make([]Move, 0, budget)
	last := -1

	for len(moves) < budget {
		p := rng.Intn(len(g.cells))
		if p == last {
			continue
		}

		for _, d := range Directions {
			if len(moves) == budget {
				break
			}
			if !IsLegalDir(g, p, d) {
				continue
			}
			target := p + d.Offset(g.n)
			g.ApplyMove(p, target)
			moves = append(moves, Move{From: p, To: target, Dir: d})
			last = target
		}
	}

	return moves
}

// Unwind applies the inverses of moves in reverse order, returning g to the
// arrangement it had before the moves were made.
func Unwind(g *Grid, moves []Move) {
	for i := len(moves) - 1; i >= 0; i-- {
		inv := moves[i].Inverse()
		if !IsLegalDir(g, inv.From, inv.Dir) {
			return
		}
		g.ApplyMove(inv.From, inv.To)
	}
}
