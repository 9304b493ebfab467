package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/snakelab/serpent/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game session",
	Long: `Start a game session.

Controls:
  Arrows/WASD  - Change direction
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  serpent play
  serpent play --seed 42
  serpent play --ups 15
  serpent play --config ./my-grid.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Make sure the board fits before taking over the screen.
	needW, needH := tui.MinTerminalSize(cfg)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d for this grid\n", w, h, needW, needH)
			os.Exit(1)
		}
	}

	logger := newLogger()

	if err := tui.Run(cfg, flagSeed, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a logger writing to ~/.serpent/serpent.log. Logging to
// the terminal would fight the alternate screen, so on any failure the
// logger is silenced rather than redirected.
func newLogger() *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "serpent",
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.NewWithOptions(io.Discard, opts)
	}

	dir := filepath.Join(home, ".serpent")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.NewWithOptions(io.Discard, opts)
	}

	f, err := os.OpenFile(filepath.Join(dir, "serpent.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts)
	}

	return log.NewWithOptions(f, opts)
}
