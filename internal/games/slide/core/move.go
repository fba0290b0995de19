package core

// Direction is the direction a tile slides in.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in the order moves are attempted.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Offset returns the index delta of a slide in this direction on an N-wide grid.
func (d Direction) Offset(n int) int {
	switch d {
	case DirUp:
		return -n
	case DirDown:
		return n
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

// Boundary returns the source column that blocks a slide in this direction.
// Vertical slides use N, which no column can equal.
func (d Direction) Boundary(n int) int {
	switch d {
	case DirLeft:
		return 0
	case DirRight:
		return n - 1
	default:
		return n
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Move records one accepted slide: the tile at From moved into the empty slot
// at To.
type Move struct {
	From int
	To   int
	Dir  Direction
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{From: m.To, To: m.From, Dir: m.Dir.Opposite()}
}

// IsLegal reports whether the tile at source may slide by offset.
// The slide is legal when source and target are on the grid, the source column
// is not the blocking column, and the target is the empty slot.
// IsLegal never modifies the grid.
func IsLegal(g *Grid, source, offset, columnBoundary int) bool {
	target := source + offset
	if !g.InBounds(source) || !g.InBounds(target) {
		return false
	}
	if source%g.n == columnBoundary {
		return false
	}
	return target == g.empty
}

// IsLegalDir is IsLegal with the offset and boundary derived from a direction.
func IsLegalDir(g *Grid, source int, d Direction) bool {
	return IsLegal(g, source, d.Offset(g.n), d.Boundary(g.n))
}

// TryMove attempts each direction from source in order and applies the first
// legal one. At most one direction can be legal because only one neighbour
// can be the empty slot.
func TryMove(g *Grid, source int) (Move, bool) {
	for _, d := range Directions {
		if !IsLegalDir(g, source, d) {
			continue
		}
		target := source + d.Offset(g.n)
		g.ApplyMove(source, target)
		return Move{From: source, To: target, Dir: d}, true
	}
	return Move{}, false
}

// LegalSources returns the indices of tiles that can currently slide.
func LegalSources(g *Grid) []int {
	var sources []int
	for i := range g.cells {
		for _, d := range Directions {
			if IsLegalDir(g, i, d) {
				sources = append(sources, i)
				break
			}
		}
	}
	return sources
}
