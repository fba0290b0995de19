package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresDimension   int
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the fastest clears",
	Long: `Display the fastest level clears for each grid size, followed by the
longest runs.

Examples:
  slide scores
  slide scores --dimension 4 --limit 20
  slide scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Clears to show per grid size")
	scoresCmd.Flags().IntVar(&flagScoresDimension, "dimension", 0, "Only show this grid size (0 = all)")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse results in a table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	dims := []int{flagScoresDimension}
	if flagScoresDimension == 0 {
		if dims, err = store.Dimensions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
			os.Exit(1)
		}
	}

	if len(dims) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Println("Play 'slide play' to set the first time!")
		return
	}

	for _, dim := range dims {
		clears, err := store.TopClears(dim, flagScoresLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
			os.Exit(1)
		}
		printClears(dim, clears)
	}

	runs, err := store.BestRuns(5)
	if err == nil && len(runs) > 0 {
		fmt.Println("Longest runs")
		fmt.Printf("  %-4s  %-7s  %-6s  %-8s  %s\n", "Rank", "Cleared", "Size", "Ended", "Date")
		fmt.Printf("  %-4s  %-7s  %-6s  %-8s  %s\n", "----", "-------", "----", "-----", "----")
		for i, r := range runs {
			fmt.Printf("  %-4d  %-7d  %-6s  %-8s  %s\n",
				i+1, r.Cleared, fmt.Sprintf("%dx%d", r.Dimension, r.Dimension), r.Reason,
				r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
}

func printClears(dim int, clears []storage.ClearEntry) {
	fmt.Printf("Fastest clears - %dx%d\n", dim, dim)
	if len(clears) == 0 {
		fmt.Println("  none yet")
		fmt.Println()
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %s\n", "Rank", "Time", "Moves", "Variant", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %s\n", "----", "----", "-----", "-------", "----")
	for i, c := range clears {
		fmt.Printf("  %-4d  %-6s  %-6d  %-10s  %s\n",
			i+1, slide.FormatClock(c.Seconds), c.Moves, c.Variant, c.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
}
