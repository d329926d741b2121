package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tui-platformer/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show high scores for a level",
	Long: `Display the top 10 high scores for the specified level.

Examples:
  platformer scores level1
  platformer scores bonus`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", levelID)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'platformer play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-24s  %-10s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-24s  %-10s  %s\n", "----", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-24s  %-10d  %s\n", i+1, entry.Name, entry.Score, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(levelID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
