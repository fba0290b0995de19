package core

// IsSolved reports whether every cell holds the tile that belongs there.
// The empty marker N²-1 is only in place when it occupies the last cell.
func IsSolved(g *Grid) bool {
	for i, v := range g.cells {
		if v != i {
			return false
		}
	}
	return true
}

// Misplaced counts tiles (excluding the empty slot) that are not in their
// solved position.
func Misplaced(g *Grid) int {
	count := 0
	for i, v := range g.cells {
		if i != g.empty && v != i {
			count++
		}
	}
	return count
}
