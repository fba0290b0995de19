package core

import (
	"errors"
	"testing"
)

func TestNewGridSolved(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7} {
		g := New(n)

		if g.Dimension() != n {
			t.Errorf("Dimension() = %d, want %d", g.Dimension(), n)
		}
		if g.Len() != n*n {
			t.Errorf("Len() = %d, want %d", g.Len(), n*n)
		}
		if g.EmptyIndex() != n*n-1 {
			t.Errorf("N=%d: EmptyIndex() = %d, want %d", n, g.EmptyIndex(), n*n-1)
		}
		if !IsSolved(g) {
			t.Errorf("N=%d: new grid should be solved", n)
		}
		if err := g.Validate(); err != nil {
			t.Errorf("N=%d: Validate() = %v", n, err)
		}
	}
}

func TestNewGridClampsDimension(t *testing.T) {
	g := New(1)
	if g.Dimension() != MinDimension {
		t.Errorf("Dimension() = %d, want %d", g.Dimension(), MinDimension)
	}
}

func TestFromCells(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		cells     []int
		wantEmpty int
		wantCode  string
	}{
		{
			name:      "solved 3x3",
			n:         3,
			cells:     []int{0, 1, 2, 3, 4, 5, 6, 7, 8},
			wantEmpty: 8,
		},
		{
			name:      "empty in the middle",
			n:         3,
			cells:     []int{0, 1, 2, 3, 8, 5, 6, 7, 4},
			wantEmpty: 4,
		},
		{
			name:     "wrong length",
			n:        3,
			cells:    []int{0, 1, 2},
			wantCode: "BAD_LENGTH",
		},
		{
			name:     "missing empty marker",
			n:        2,
			cells:    []int{0, 1, 2, 2},
			wantCode: "NO_EMPTY",
		},
		{
			name:     "duplicate tile",
			n:        2,
			cells:    []int{0, 0, 3, 1},
			wantCode: "DUPLICATE_TILE",
		},
		{
			name:     "out of range tile",
			n:        2,
			cells:    []int{0, 7, 3, 1},
			wantCode: "BAD_TILE",
		},
		{
			name:     "dimension too small",
			n:        1,
			cells:    []int{0},
			wantCode: "BAD_DIMENSION",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := FromCells(tc.n, tc.cells)
			if tc.wantCode != "" {
				var verr ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("FromCells() error = %v, want ValidationError", err)
				}
				if verr.Code != tc.wantCode {
					t.Errorf("error code = %s, want %s", verr.Code, tc.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromCells() failed: %v", err)
			}
			if g.EmptyIndex() != tc.wantEmpty {
				t.Errorf("EmptyIndex() = %d, want %d", g.EmptyIndex(), tc.wantEmpty)
			}
		})
	}
}

func TestFromCellsCopiesInput(t *testing.T) {
	cells := []int{0, 1, 2, 3}
	g, err := FromCells(2, cells)
	if err != nil {
		t.Fatalf("FromCells() failed: %v", err)
	}
	cells[0] = 3
	if g.At(0) != 0 {
		t.Error("grid should not alias the input slice")
	}
}

func TestApplyMoveTracksEmpty(t *testing.T) {
	g := New(3)

	// Slide tile 7 right into the empty slot.
	g.ApplyMove(7, 8)
	if g.EmptyIndex() != 7 {
		t.Errorf("EmptyIndex() = %d, want 7", g.EmptyIndex())
	}
	if g.At(8) != 7 || g.At(7) != 8 {
		t.Errorf("cells after move = %v", g.Cells())
	}

	// Argument order does not matter.
	g.ApplyMove(8, 7)
	if g.EmptyIndex() != 8 || !IsSolved(g) {
		t.Errorf("grid should be solved again, got\n%s", g)
	}
}

func TestApplyMoveOutOfRange(t *testing.T) {
	g := New(3)
	g.ApplyMove(8, 9)
	g.ApplyMove(-1, 8)
	if !IsSolved(g) {
		t.Error("out-of-range ApplyMove should not change the grid")
	}
}

func TestCellsReturnsCopy(t *testing.T) {
	g := New(2)
	cells := g.Cells()
	cells[0] = 99
	if g.At(0) != 0 {
		t.Error("Cells() should return a copy")
	}
}

func TestCloneAndEqual(t *testing.T) {
	g := New(3)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}

	c.ApplyMove(5, 8)
	if g.Equal(c) {
		t.Error("mutating the clone should not affect the original")
	}
	if g.Equal(nil) {
		t.Error("Equal(nil) should be false")
	}
}

func TestRowColIndex(t *testing.T) {
	g := New(4)
	for i := 0; i < g.Len(); i++ {
		row, col := g.RowCol(i)
		if g.Index(row, col) != i {
			t.Errorf("Index(RowCol(%d)) = %d", i, g.Index(row, col))
		}
	}
	if row, col := g.RowCol(6); row != 1 || col != 2 {
		t.Errorf("RowCol(6) = (%d, %d), want (1, 2)", row, col)
	}
}

func TestGridString(t *testing.T) {
	g := New(2)
	want := "0 1\n2 _"
	if g.String() != want {
		t.Errorf("String() = %q, want %q", g.String(), want)
	}
}
