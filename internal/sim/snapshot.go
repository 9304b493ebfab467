package sim

// State names the controller's two states.
type State string

const (
	StateRunning State = "running"
	StateEnded   State = "ended"
)

// Snapshot captures the observable simulation state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Len     int
	HeadX   float64
	HeadY   float64
	Dir     Direction
	TargetX float64
	TargetY float64
	State   State
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	state := StateRunning
	if s.ended {
		state = StateEnded
	}

	head := s.actor.Head()
	target := s.target.Cell()

	return Snapshot{
		Tick:    s.tick,
		Len:     s.actor.Len(),
		HeadX:   head.X,
		HeadY:   head.Y,
		Dir:     s.actor.Direction(),
		TargetX: target.X,
		TargetY: target.Y,
		State:   state,
	}
}
