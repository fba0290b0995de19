// slide is a timed sliding-tile puzzle for the terminal.
//
// Usage:
//
//	slide                    - Play (same as slide play)
//	slide play               - Play the puzzle
//	slide serve              - Start SSH server for remote play
//	slide scores             - Show the fastest clears per grid size
//	slide levels             - List the configured level variants
//	slide config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible shuffles
//	--db <path>           - Set database path (default: ~/.slide/results.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide",
	Short: "Slide - a timed sliding-tile puzzle in your terminal",
	Long: `Slide shuffles an NxN grid of numbered tiles. Slide tiles into the gap
until they are back in order before the clock runs out, then take on a
bigger grid.

Available commands:
  play     - Play the puzzle (default)
  serve    - Start SSH server for remote play
  scores   - View the fastest clears
  levels   - List level variants
  config   - Print the effective configuration

Examples:
  slide
  slide play --difficulty hard
  slide serve --ssh :2222
  slide scores --dimension 4`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the puzzle config and applies --difficulty.
func loadGameConfig() (config.SlideConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SlideConfig{}, err
	}
	cfg, err := config.LoadSlide(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplySlidePreset(&cfg, preset)
	return cfg, nil
}
