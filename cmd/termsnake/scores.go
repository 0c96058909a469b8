package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/snakelab/termsnake/internal/platform/tui"
	"github.com/snakelab/termsnake/internal/storage"
)

var (
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display recorded runs ordered by score.

By default this opens an interactive table. Use --plain for script-friendly
output, or --clear to wipe the table.

Examples:
  termsnake scores
  termsnake scores --plain
  termsnake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print scores as plain text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
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
		fmt.Println("All runs cleared.")
		return
	}

	if flagScoresPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termsnake' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-7s  %-10s  %s\n", "Rank", "Score", "Speed", "Length", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-7s  %-10s  %s\n", "----", "-----", "-----", "------", "-------", "----")

	for i, run := range runs {
		fmt.Printf("  %-4d  %-10d  %-6d  %-7d  %-10s  %s\n",
			i+1, run.Score, run.SpeedLevel, run.SnakeLength, run.Outcome,
			run.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
