// Package tui provides the Bubble Tea integration for serpent: the fixed-rate
// tick source, key-to-direction mapping, and screen rendering that drive the
// simulation core from the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. Simulation rate is decoupled from render frequency: the
// view redraws on every message, ticks arrive on this schedule only.
func tickCmd(updatesPerSecond int) tea.Cmd {
	interval := time.Second / time.Duration(updatesPerSecond)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
