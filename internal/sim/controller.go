package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/snakelab/serpent/internal/core"
	"github.com/snakelab/serpent/internal/grid"
)

// Config is the construction-time surface of a simulation.
type Config struct {
	Extent      grid.Extent
	Seed        int64
	ActorColor  core.Color
	TargetColor core.Color
}

// Simulation owns the actor, the target, and the terminal flag, and composes
// them into the per-tick contract the driver consumes. It is mutated only by
// SetDirection and Tick, called sequentially from one logical thread.
type Simulation struct {
	extent grid.Extent
	rng    *rand.Rand
	actor  *Actor
	target *Target

	// pending is the input latch: overwritten on every direction event,
	// consumed at the top of the next Tick. Input is never applied
	// mid-computation.
	pending    Direction
	hasPending bool

	tick  uint64
	ended bool
}

// New builds a running simulation: a single-segment actor heading Right at a
// random cell and a target placed off the actor. The extent is validated up
// front so wrap arithmetic can never silently corrupt.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Extent.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	start := grid.RandomCell(rng, cfg.Extent)
	actor, err := NewActor([]grid.Cell{start}, cfg.Extent.CellSize)
	if err != nil {
		return nil, err
	}
	if cfg.ActorColor != core.ColorDefault {
		actor.SetColor(cfg.ActorColor)
	}

	target := NewTarget(grid.Cell{}, cfg.Extent.CellSize)
	if cfg.TargetColor != core.ColorDefault {
		target.SetColor(cfg.TargetColor)
	}
	if !target.Relocate(rng, cfg.Extent, actor) {
		return nil, errors.New("sim: no free cell to place target")
	}

	return &Simulation{
		extent: cfg.Extent,
		rng:    rng,
		actor:  actor,
		target: target,
	}, nil
}

// SetDirection latches a direction change for the next tick. The last event
// before a tick wins; the reversal rule is applied when the latch is
// consumed, against the direction actually travelled. Calling this after the
// simulation has ended is harmless.
func (s *Simulation) SetDirection(d Direction) {
	s.pending = d
	s.hasPending = true
}

// Tick advances the simulation one frame: consume the input latch, advance
// the actor, then react to the outcome. Once ended, Tick is a no-op.
func (s *Simulation) Tick() {
	if s.ended {
		return
	}
	s.tick++

	if s.hasPending {
		s.actor.SetDirection(s.pending)
		s.hasPending = false
	}

	switch s.actor.Advance(s.target.Cell(), s.extent.Width, s.extent.Height) {
	case Continue:
	case Grew:
		if !s.target.Relocate(s.rng, s.extent, s.actor) {
			// Grid full: nowhere left to place the target.
			s.ended = true
		}
	case Collided:
		s.ended = true
	}
}

// Ended reports whether the terminal state has been reached. The flag is
// write-once for the life of the instance.
func (s *Simulation) Ended() bool {
	return s.ended
}

// Extent returns the grid configuration.
func (s *Simulation) Extent() grid.Extent {
	return s.extent
}

// ActorCells returns the actor's occupied cells, head-first, as a read-only
// snapshot for rendering.
func (s *Simulation) ActorCells() []grid.Cell {
	return s.actor.Cells()
}

// ActorColor returns the actor's display color.
func (s *Simulation) ActorColor() core.Color {
	return s.actor.Color()
}

// TargetCell returns the target's occupied cell.
func (s *Simulation) TargetCell() grid.Cell {
	return s.target.Cell()
}

// TargetColor returns the target's display color.
func (s *Simulation) TargetColor() core.Color {
	return s.target.Color()
}

// Len returns the actor's current body length.
func (s *Simulation) Len() int {
	return s.actor.Len()
}

// Direction returns the actor's current heading.
func (s *Simulation) Direction() Direction {
	return s.actor.Direction()
}
