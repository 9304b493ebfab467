package sim

import (
	"math/rand"

	"github.com/snakelab/serpent/internal/core"
	"github.com/snakelab/serpent/internal/grid"
)

// relocateAttemptsPerCell bounds rejection sampling before Relocate falls
// back to a deterministic sweep of the sampling area.
const relocateAttemptsPerCell = 4

// Target is the single consumable cell (the food). Its position is replaced,
// never mutated in place, each time the actor's head reaches it.
type Target struct {
	cell  grid.Cell
	size  float64
	color core.Color
}

// NewTarget creates a target at the given cell.
func NewTarget(cell grid.Cell, cellSize float64) *Target {
	return &Target{
		cell:  cell,
		size:  cellSize,
		color: core.ColorGreen,
	}
}

// Relocate commits a fresh random cell that no actor segment occupies.
//
// It rejection-samples up to a hard cap, then sweeps the sampling area in
// order so that a fully occupied grid is an explicit, detectable condition
// rather than a non-terminating loop. Returns false only when every cell the
// placement margin allows is occupied; the target is then left unchanged and
// the caller decides the terminal outcome.
func (t *Target) Relocate(rng *rand.Rand, e grid.Extent, actor *Actor) bool {
	cols := e.Cols() - 1
	rows := e.Rows() - 1

	maxAttempts := cols * rows * relocateAttemptsPerCell
	for i := 0; i < maxAttempts; i++ {
		candidate := grid.RandomCell(rng, e)
		if !actor.Occupies(candidate) {
			t.cell = candidate
			return true
		}
	}

	// Sampling exhausted: scan every reachable placement once.
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			candidate := grid.Cell{X: float64(x) * e.CellSize, Y: float64(y) * e.CellSize}
			if !actor.Occupies(candidate) {
				t.cell = candidate
				return true
			}
		}
	}
	return false
}

// Cell returns the target's current position.
func (t *Target) Cell() grid.Cell {
	return t.cell
}

// Size returns the display size of the target.
func (t *Target) Size() float64 {
	return t.size
}

// Color returns the display color of the target.
func (t *Target) Color() core.Color {
	return t.color
}

// SetColor overrides the display color.
func (t *Target) SetColor(c core.Color) {
	t.color = c
}
