// Package sim implements the simulation core: the actor (snake), the target
// (food), and the controller that drives them one discrete tick at a time.
// It contains pure logic with no terminal dependencies; the platform layer
// owns timing, input devices, and drawing.
package sim

// Direction is the actor's four-way heading.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Opposite returns the 180-degree reversal of a direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}
