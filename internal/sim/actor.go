package sim

import (
	"errors"
	"fmt"

	"github.com/snakelab/serpent/internal/core"
	"github.com/snakelab/serpent/internal/grid"
)

// StepOutcome reports what a single Advance call did.
type StepOutcome int

const (
	// Continue: the actor moved one cell, length unchanged.
	Continue StepOutcome = iota
	// Grew: the actor's head reached the target; the tail was kept.
	Grew
	// Collided: the proposed head hit the body; nothing was mutated.
	Collided
)

func (o StepOutcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Grew:
		return "grew"
	case Collided:
		return "collided"
	default:
		return "unknown"
	}
}

// Actor is the player-controlled snake: an ordered head-first body of cells
// and a facing direction. All body cells are distinct except transiently
// inside Advance, where the proposed head is tested before it is committed.
type Actor struct {
	body      *body
	direction Direction
	size      float64
	color     core.Color
}

// NewActor creates an actor from a head-first body, heading Right.
// An empty body or non-positive cell size is an invariant violation.
func NewActor(cells []grid.Cell, cellSize float64) (*Actor, error) {
	if len(cells) == 0 {
		return nil, errors.New("sim: actor body must not be empty")
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("sim: actor cell size must be positive, got %v", cellSize)
	}

	return &Actor{
		body:      newBody(cells),
		direction: DirRight,
		size:      cellSize,
		color:     core.ColorRed,
	}, nil
}

// Advance moves the actor one cell in its current direction, wrapping both
// coordinates toroidally against the grid extents.
//
// If the wrapped head lands on any existing body cell the move is rejected:
// the body is left untouched and Collided is returned. Otherwise the head is
// prepended; reaching targetCell keeps the tail (Grew, net length +1), any
// other cell drops it (Continue, net movement of one cell).
func (a *Actor) Advance(targetCell grid.Cell, gridWidth, gridHeight float64) StepOutcome {
	next := a.body.at(0)
	switch a.direction {
	case DirLeft:
		next.X -= a.size
	case DirRight:
		next.X += a.size
	case DirUp:
		next.Y -= a.size
	case DirDown:
		next.Y += a.size
	}
	next.X = grid.Wrap(next.X, gridWidth, a.size)
	next.Y = grid.Wrap(next.Y, gridHeight, a.size)

	if a.Occupies(next) {
		return Collided
	}

	a.body.pushFront(next)
	if next == targetCell {
		return Grew
	}
	a.body.popBack()
	return Continue
}

// Occupies returns true iff any body segment equals the given cell. Used both
// for self-collision and for target placement rejection.
func (a *Actor) Occupies(c grid.Cell) bool {
	return a.body.contains(c)
}

// SetDirection changes the heading unless the request is the exact opposite
// of the current one, in which case it is silently ignored. The rule depends
// on travel direction only, so a single-segment actor is equally protected.
func (a *Actor) SetDirection(d Direction) {
	if d == a.direction.Opposite() {
		return
	}
	a.direction = d
}

// Direction returns the current heading.
func (a *Actor) Direction() Direction {
	return a.direction
}

// Head returns the most recently occupied cell.
func (a *Actor) Head() grid.Cell {
	return a.body.at(0)
}

// Len returns the number of body segments.
func (a *Actor) Len() int {
	return a.body.len()
}

// Cells returns a read-only snapshot of the body, head-first.
func (a *Actor) Cells() []grid.Cell {
	return a.body.snapshot()
}

// Size returns the display size of one segment.
func (a *Actor) Size() float64 {
	return a.size
}

// Color returns the display color of the actor.
func (a *Actor) Color() core.Color {
	return a.color
}

// SetColor overrides the display color.
func (a *Actor) SetColor(c core.Color) {
	a.color = c
}
