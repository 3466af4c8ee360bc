package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scoopstack/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs.

Examples:
  scoopstack scores
  scoopstack scores --limit 25
  scoopstack scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the entire run history")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Scoop Stack")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'scoopstack play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-30s  %-7s  %s\n", "Rank", "Score", "Outcome", "Reason", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-30s  %-7s  %s\n", "----", "-----", "-------", "------", "----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		duration := fmt.Sprintf("%dm%02ds", entry.DurationSecs/60, entry.DurationSecs%60)
		fmt.Printf("  %-4d  %-6d  %-7s  %-30s  %-7s  %s\n",
			i+1, entry.Score, entry.Outcome, entry.Reason, duration, dateStr)
	}

	fmt.Println()
	if stats, err := store.RunStats(); err == nil {
		fmt.Printf("Plays: %d   Wins: %d   Best: %d\n", stats.Plays, stats.Wins, stats.HighScore)
	}
}
