package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration without playing",
	Long: `Load the configuration (honoring --config and --ups), run the same
validation the play command uses, and print the resolved values.

Examples:
  serpent check
  serpent check --config ./my-grid.yaml`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	e := cfg.Extent()
	fmt.Printf("Config OK\n")
	fmt.Printf("  grid:    %vx%v, cell size %v (%dx%d cells)\n", e.Width, e.Height, e.CellSize, e.Cols(), e.Rows())
	fmt.Printf("  timing:  %d updates/second\n", cfg.Timing.UpdatesPerSecond)
	fmt.Printf("  colors:  actor=%s target=%s\n", cfg.Colors.Actor, cfg.Colors.Target)
	return nil
}
