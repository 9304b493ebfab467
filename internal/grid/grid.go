// Package grid provides the geometry primitives for the simulation: grid-aligned
// cells, toroidal coordinate wrapping, and random in-grid placement.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation core pure and testable.
package grid

import (
	"fmt"
	"math"
	"math/rand"
)

// Cell is one grid-aligned unit position. Both coordinates are non-negative and
// always an integer multiple of the extent's cell size. Equality is exact.
type Cell struct {
	X, Y float64
}

// Extent describes the playfield: its dimensions and the size of one cell.
// The cell size must evenly divide both dimensions for Wrap to behave correctly.
type Extent struct {
	Width    float64
	Height   float64
	CellSize float64
}

// Validate checks the Wrap preconditions. It rejects non-positive cell sizes and
// extents that are smaller than one cell or not an exact multiple of the cell size.
func (e Extent) Validate() error {
	if e.CellSize <= 0 {
		return fmt.Errorf("grid: cell size must be positive, got %v", e.CellSize)
	}
	// Two cells per axis: the placement margin excludes the last row and
	// column, so anything narrower leaves RandomCell with nothing to sample.
	if e.Width < 2*e.CellSize || e.Height < 2*e.CellSize {
		return fmt.Errorf("grid: extent %vx%v must be at least two cells (%v) per axis", e.Width, e.Height, e.CellSize)
	}
	if math.Mod(e.Width, e.CellSize) != 0 || math.Mod(e.Height, e.CellSize) != 0 {
		return fmt.Errorf("grid: cell size %v must evenly divide extent %vx%v", e.CellSize, e.Width, e.Height)
	}
	return nil
}

// Cols returns the number of cells along the x axis.
func (e Extent) Cols() int {
	return int(e.Width / e.CellSize)
}

// Rows returns the number of cells along the y axis.
func (e Extent) Rows() int {
	return int(e.Height / e.CellSize)
}

// Wrap maps a proposed coordinate onto the torus. Coordinates inside [0, extent)
// pass through unchanged; stepping past the far edge re-enters at 0; stepping
// below 0 re-enters at extent-cellSize. A single step never overshoots by more
// than one cell, which is what makes this one-step form sufficient.
func Wrap(coord, extent, cellSize float64) float64 {
	if coord >= extent {
		return 0
	}
	if coord < 0 {
		return extent - cellSize
	}
	return coord
}

// RandomCell draws a uniformly random cell inside the extent. The sampling area
// deliberately excludes the last row and column of cells: the grid dimensions are
// computed as floor(extent/cellSize)-1 per axis. This margin is a documented,
// reproducible property of placement, not an off-by-one to fix.
func RandomCell(rng *rand.Rand, e Extent) Cell {
	cols := int(math.Floor(e.Width/e.CellSize)) - 1
	rows := int(math.Floor(e.Height/e.CellSize)) - 1

	return Cell{
		X: float64(rng.Intn(cols)) * e.CellSize,
		Y: float64(rng.Intn(rows)) * e.CellSize,
	}
}
