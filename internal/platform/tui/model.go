package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/snakelab/serpent/internal/config"
	"github.com/snakelab/serpent/internal/core"
	"github.com/snakelab/serpent/internal/grid"
	"github.com/snakelab/serpent/internal/sim"
)

const hudHeight = 2 // Title line plus separator

// Model is the Bubble Tea model driving one game session. It owns the tick
// schedule and the input events; the simulation itself stays pure.
type Model struct {
	cfg    config.Config
	sim    *sim.Simulation
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	paused   bool
	quitting bool
}

// NewModel creates a session model for the given configuration. A zero seed
// is replaced with the current time.
func NewModel(cfg config.Config, seed int64, logger *log.Logger) (Model, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := newSimulation(cfg, seed)
	if err != nil {
		return Model{}, err
	}

	e := cfg.Extent()
	logger.Info("session started",
		"grid", fmt.Sprintf("%vx%v", e.Width, e.Height),
		"cell_size", e.CellSize,
		"ups", cfg.Timing.UpdatesPerSecond,
		"seed", seed,
	)

	return Model{
		cfg:    cfg,
		sim:    s,
		screen: core.NewScreen(screenSize(e)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}, nil
}

func newSimulation(cfg config.Config, seed int64) (*sim.Simulation, error) {
	return sim.New(sim.Config{
		Extent:      cfg.Extent(),
		Seed:        seed,
		ActorColor:  cfg.ActorColor(),
		TargetColor: cfg.TargetColor(),
	})
}

// screenSize returns the buffer dimensions for an extent: the board in cells
// plus its border, below the HUD.
func screenSize(e grid.Extent) (w, h int) {
	w = e.Cols() + 2
	if w < 24 { // Room for the HUD text
		w = 24
	}
	h = e.Rows() + 2 + hudHeight
	return w, h
}

// MinTerminalSize returns the smallest terminal that fits a session for the
// given configuration, including the help bar below the screen buffer.
func MinTerminalSize(cfg config.Config) (w, h int) {
	w, h = screenSize(cfg.Extent())
	return w, h + 1
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Timing.UpdatesPerSecond)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Direction keys are latched into the
// simulation and consumed by the next tick; everything else stays in the
// driver.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if !m.sim.Ended() {
			m.paused = !m.paused
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.sim.Ended() {
			return m.restart()
		}
		return m, nil
	}

	if d, ok := m.keys.directionFor(msg); ok && !m.paused {
		m.sim.SetDirection(d)
	}
	return m, nil
}

// restart builds a fresh simulation with a new seed. The old instance's
// terminal flag is write-once, so the instance is replaced, never revived.
func (m Model) restart() (tea.Model, tea.Cmd) {
	seed := time.Now().UnixNano()
	s, err := newSimulation(m.cfg, seed)
	if err != nil {
		// Config was already validated; treat this as fatal.
		m.logger.Error("restart failed", "error", err)
		m.quitting = true
		return m, tea.Quit
	}

	m.logger.Info("session restarted", "seed", seed)
	m.sim = s
	m.paused = false
	return m, nil
}

// handleTick advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.sim.Ended() {
		m.sim.Tick()

		if m.sim.Ended() {
			snap := m.sim.Snapshot()
			m.logger.Info("session ended", "length", snap.Len, "ticks", snap.Tick)
		}
	}

	return m, tickCmd(m.cfg.Timing.UpdatesPerSecond)
}

// View renders the current frame: HUD, board, entities, and overlays, with
// the help bar below.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// render draws the session into the screen buffer using read-only snapshots
// of the simulation.
func (m Model) render(dst *core.Screen) {
	dst.Clear()

	e := m.sim.Extent()
	boardW := e.Cols() + 2
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	m.renderHUD(dst)

	dst.DrawBox(core.NewRect(boardX, boardY, boardW, e.Rows()+2), core.ColorGray)

	// Cell coordinates are multiples of the cell size; divide back down to
	// board positions.
	target := m.sim.TargetCell()
	dst.SetCell(
		boardX+1+int(target.X/e.CellSize),
		boardY+1+int(target.Y/e.CellSize),
		'*', m.sim.TargetColor(),
	)

	actorColor := m.sim.ActorColor()
	for i, c := range m.sim.ActorCells() {
		r := 'o'
		if i == 0 {
			r = 'O' // Head
		}
		dst.SetCell(
			boardX+1+int(c.X/e.CellSize),
			boardY+1+int(c.Y/e.CellSize),
			r, actorColor,
		)
	}

	switch {
	case m.sim.Ended():
		m.renderOverlay(dst, "Game Over", "Press r to restart")
	case m.paused:
		m.renderOverlay(dst, "Paused", "Press p to continue")
	}
}

// renderHUD draws the top status line.
func (m Model) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" serpent | length: %d", m.sim.Len())
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (m Model) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// Run starts the Bubble Tea program for one game session.
func Run(cfg config.Config, seed int64, logger *log.Logger) error {
	model, err := NewModel(cfg, seed, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
