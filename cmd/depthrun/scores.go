package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/probelab/depthrun/internal/platform/tui"
	"github.com/probelab/depthrun/internal/storage"
)

var flagBoard bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the top 10 runs, or browse the full history with --board.

Examples:
  depthrun scores
  depthrun scores --board`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Browse run history in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	const gameID = "runner"

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Runs - Depth Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'depthrun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "Rank", "Score", "Duration", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "----", "-----", "--------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-9.1fs  %s\n", i+1, entry.Score, float64(entry.Ticks)/60.0, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
