// Package core contains the pure sliding-puzzle model: the grid, move legality,
// the solvable shuffle and completion detection.
// It has no dependencies on the platform layer so it can be tested in isolation.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// MinDimension is the smallest supported grid side length.
const MinDimension = 2

// Grid is an N×N arrangement of tiles stored in row-major order.
// Tile i belongs at index i when solved. The empty slot holds the marker N²-1,
// so a solved grid reads 0, 1, ..., N²-1.
type Grid struct {
	n     int
	cells []int
	empty int
}

// New creates a solved grid of the given dimension with the empty slot in the
// last cell. Dimensions below MinDimension are raised to MinDimension.
func New(n int) *Grid {
	if n < MinDimension {
		n = MinDimension
	}
	cells := make([]int, n*n)
	for i := range cells {
		cells[i] = i
	}
	return &Grid{
		n:     n,
		cells: cells,
		empty: n*n - 1,
	}
}

// FromCells builds a grid from an explicit row-major arrangement.
// The cells must be a permutation of [0, N²-1]; the position of N²-1 becomes
// the empty slot.
func FromCells(n int, cells []int) (*Grid, error) {
	if n < MinDimension {
		return nil, ValidationError{
			Code:    "BAD_DIMENSION",
			Message: fmt.Sprintf("dimension %d is below %d", n, MinDimension),
		}
	}
	if len(cells) != n*n {
		return nil, ValidationError{
			Code:    "BAD_LENGTH",
			Message: fmt.Sprintf("expected %d cells, got %d", n*n, len(cells)),
		}
	}

	g := &Grid{
		n:     n,
		cells: append([]int(nil), cells...),
		empty: -1,
	}
	for i, v := range g.cells {
		if v == g.EmptyTile() {
			g.empty = i
			break
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Dimension returns the side length N.
func (g *Grid) Dimension() int {
	return g.n
}

// Len returns the number of cells (N²).
func (g *Grid) Len() int {
	return len(g.cells)
}

// EmptyTile returns the marker value stored in the empty slot.
func (g *Grid) EmptyTile() int {
	return g.n*g.n - 1
}

// EmptyIndex returns the index of the empty slot.
func (g *Grid) EmptyIndex() int {
	return g.empty
}

// At returns the tile at index i, or -1 when i is out of range.
func (g *Grid) At(i int) int {
	if !g.InBounds(i) {
		return -1
	}
	return g.cells[i]
}

// IsEmpty reports whether index i is the empty slot.
func (g *Grid) IsEmpty(i int) bool {
	return i == g.empty
}

// InBounds reports whether i is a valid cell index.
func (g *Grid) InBounds(i int) bool {
	return i >= 0 && i < len(g.cells)
}

// Cells returns a copy of the row-major arrangement.
func (g *Grid) Cells() []int {
	return append([]int(nil), g.cells...)
}

// RowCol converts a cell index to its row and column.
func (g *Grid) RowCol(i int) (row, col int) {
	return i / g.n, i % g.n
}

// Index converts a row and column to a cell index.
func (g *Grid) Index(row, col int) int {
	return row*g.n + col
}

// ApplyMove swaps cells i and j and moves the empty slot to whichever of the
// two previously held the marker. Callers must check IsLegal first; ApplyMove
// only guards against out-of-range indices.
func (g *Grid) ApplyMove(i, j int) {
	if !g.InBounds(i) || !g.InBounds(j) {
		return
	}
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	switch g.empty {
	case i:
		g.empty = j
	case j:
		g.empty = i
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		n:     g.n,
		cells: g.Cells(),
		empty: g.empty,
	}
}

// Equal reports whether two grids hold the same arrangement.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.n != other.n || g.empty != other.empty {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as rows of tile numbers with "_" for the empty slot.
func (g *Grid) String() string {
	var sb strings.Builder
	for i, v := range g.cells {
		if i > 0 {
			if i%g.n == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		if i == g.empty {
			sb.WriteByte('_')
			continue
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
