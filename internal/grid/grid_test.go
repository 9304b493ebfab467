package grid

import (
	"math"
	"math/rand"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		coord    float64
		expected float64
	}{
		{"inside range", 15, 15},
		{"zero", 0, 0},
		{"last cell", 285, 285},
		{"at extent", 300, 0},
		{"past extent", 315, 0},
		{"below zero", -15, 285},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Wrap(tc.coord, 300, 15)
			if result != tc.expected {
				t.Errorf("Wrap(%v, 300, 15) = %v, expected %v", tc.coord, result, tc.expected)
			}
		})
	}
}

func TestWrapLeftEdgeSmallGrid(t *testing.T) {
	// Moving left from x=0 on a 30-wide grid lands on the last cell, x=15.
	if got := Wrap(0-15, 30, 15); got != 15 {
		t.Errorf("Wrap(-15, 30, 15) = %v, expected 15", got)
	}
}

func TestWrapStaysInRange(t *testing.T) {
	const extent, size = 300.0, 15.0

	// One step in any direction from any cell must land back in [0, extent).
	for coord := -size; coord <= extent+size; coord += size {
		result := Wrap(coord, extent, size)
		if result < 0 || result >= extent {
			t.Errorf("Wrap(%v) = %v, outside [0, %v)", coord, result, extent)
		}
	}
}

func TestExtentValidate(t *testing.T) {
	tests := []struct {
		name    string
		extent  Extent
		wantErr bool
	}{
		{"valid", Extent{Width: 300, Height: 300, CellSize: 15}, false},
		{"minimal two cells", Extent{Width: 30, Height: 30, CellSize: 15}, false},
		{"zero cell size", Extent{Width: 300, Height: 300, CellSize: 0}, true},
		{"negative cell size", Extent{Width: 300, Height: 300, CellSize: -15}, true},
		{"single cell wide", Extent{Width: 15, Height: 300, CellSize: 15}, true},
		{"width not divisible", Extent{Width: 310, Height: 300, CellSize: 15}, true},
		{"height not divisible", Extent{Width: 300, Height: 302, CellSize: 15}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.extent.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRandomCellAlignment(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := Extent{Width: 300, Height: 300, CellSize: 15}

	for i := 0; i < 1000; i++ {
		c := RandomCell(rng, e)
		if c.X < 0 || c.Y < 0 {
			t.Fatalf("RandomCell produced negative coordinate: %+v", c)
		}
		if math.Mod(c.X, e.CellSize) != 0 || math.Mod(c.Y, e.CellSize) != 0 {
			t.Fatalf("RandomCell not aligned to cell size: %+v", c)
		}
	}
}

func TestRandomCellExcludesLastRowAndColumn(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := Extent{Width: 300, Height: 300, CellSize: 15}

	// The sampling area is floor(extent/size)-1 cells per axis, so the last
	// row and column (coordinate 285) must never appear.
	limit := e.Width - 2*e.CellSize
	for i := 0; i < 1000; i++ {
		c := RandomCell(rng, e)
		if c.X > limit || c.Y > limit {
			t.Fatalf("RandomCell produced %+v, beyond margin limit %v", c, limit)
		}
	}
}

func TestRandomCellCoversSamplingArea(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := Extent{Width: 60, Height: 60, CellSize: 15}

	// 3x3 sampling area on a 4x4 grid; enough draws should hit every cell.
	seen := make(map[Cell]bool)
	for i := 0; i < 500; i++ {
		seen[RandomCell(rng, e)] = true
	}
	if len(seen) != 9 {
		t.Errorf("expected 9 distinct cells in sampling area, saw %d", len(seen))
	}
}

func TestExtentColsRows(t *testing.T) {
	e := Extent{Width: 300, Height: 150, CellSize: 15}
	if e.Cols() != 20 {
		t.Errorf("Cols() = %d, expected 20", e.Cols())
	}
	if e.Rows() != 10 {
		t.Errorf("Rows() = %d, expected 10", e.Rows())
	}
}
