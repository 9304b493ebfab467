// serpent is a terminal snake game on a toroidal grid: the playfield wraps at
// every edge and the only way to lose is to run into yourself.
//
// Usage:
//
//	serpent play            - Start a game session
//	serpent check           - Validate the configuration without playing
//
// Global flags:
//
//	--config <path>  - Path to a config YAML (default: ~/.serpent/config.yaml)
//	--seed <value>   - RNG seed for reproducible sessions (0 = time-based)
//	--ups <rate>     - Simulation updates per second (0 = from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snakelab/serpent/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagUPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "serpent",
	Short: "Serpent - Snake on a toroidal grid, in your terminal",
	Long: `Serpent is a terminal snake game on a toroidal grid: leaving one edge
re-enters at the opposite edge, so the walls never end a game - only
running into your own body does.

Available commands:
  play     - Start a game session
  check    - Validate the configuration without playing

Examples:
  serpent play
  serpent play --seed 42
  serpent play --config ./my-grid.yaml
  serpent check --config ./my-grid.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagUPS, "ups", 0, "Simulation updates per second (0 = from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadConfig loads and validates the configuration, honoring the global
// --config and --ups flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagUPS > 0 {
		cfg.Timing.UpdatesPerSecond = flagUPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
