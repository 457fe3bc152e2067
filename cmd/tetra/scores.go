package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  tetra scores
  tetra scores --limit 25
  tetra scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultTopN, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Get top scores
	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Println("High Scores - Tetra")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetra play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-14s  %-10s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Lines", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-10d  %-5d  %-5d  %s\n", i+1, entry.Player, entry.Score, entry.Level, entry.Lines, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore()
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
