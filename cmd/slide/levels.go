package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/games/slide"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level variants",
	Long: `Shows the configured level variants with the grid size and time limit
of the first pass through them.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Level variants:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, lv := range cfg.Levels {
		maxNameLen = max(maxNameLen, len(lv.Name))
	}

	fmt.Printf("  %-5s  %-*s  %-6s  %s\n", "Level", maxNameLen, "Name", "Size", "Palette")
	fmt.Printf("  %-5s  %-*s  %-6s  %s\n", "-----", maxNameLen, "----", "----", "-------")

	level, dim := 0, cfg.Grid.InitialDimension
	for i, lv := range cfg.Levels {
		fmt.Printf("  %-5d  %-*s  %-6s  %s\n",
			i+1, maxNameLen, lv.Name, fmt.Sprintf("%dx%d", dim, dim), strings.Join(lv.Palette, ", "))
		level, dim = slide.NextLevel(cfg, level, dim)
	}

	fmt.Println()
	fmt.Printf("Time per level: %s. Wrap policy: %s.\n",
		slide.FormatClock(cfg.Timer.StartingTime), wrapPolicyName(cfg.Grid.WrapPolicy))
}

func wrapPolicyName(p config.WrapPolicy) string {
	if p == config.WrapReset {
		return "reset to the first size"
	}
	return "keep growing"
}
