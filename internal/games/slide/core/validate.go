package core

import "fmt"

// ValidationError describes a grid that breaks the tile invariant.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that exactly one cell holds the empty marker, that it sits at
// the recorded empty index and that the remaining cells are a permutation of
// [0, N²-2].
func (g *Grid) Validate() error {
	if len(g.cells) != g.n*g.n {
		return ValidationError{
			Code:    "BAD_LENGTH",
			Message: fmt.Sprintf("expected %d cells, got %d", g.n*g.n, len(g.cells)),
		}
	}

	if !g.InBounds(g.empty) {
		return ValidationError{
			Code:    "NO_EMPTY",
			Message: fmt.Sprintf("empty marker %d not found", g.EmptyTile()),
		}
	}
	if g.cells[g.empty] != g.EmptyTile() {
		return ValidationError{
			Code:    "EMPTY_MISMATCH",
			Message: fmt.Sprintf("cell %d holds %d, not the empty marker", g.empty, g.cells[g.empty]),
		}
	}

	seen := make([]bool, len(g.cells))
	for i, v := range g.cells {
		if v < 0 || v >= len(g.cells) {
			return ValidationError{
				Code:    "BAD_TILE",
				Message: fmt.Sprintf("cell %d holds out-of-range tile %d", i, v),
			}
		}
		if seen[v] {
			return ValidationError{
				Code:    "DUPLICATE_TILE",
				Message: fmt.Sprintf("tile %d appears more than once", v),
			}
		}
		seen[v] = true
	}

	return nil
}
