package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/safari-maze/internal/storage"
	"github.com/vovakirdan/safari-maze/internal/telemetry"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for a difficulty (default: every difficulty)
together with summary statistics over all recorded runs.

Examples:
  safari scores
  safari scores hard
  safari scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the recorded scores instead of showing them")
}

func runScores(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	keys := cfg.DifficultyKeys()
	if len(args) == 1 {
		d, lookupErr := cfg.Difficulty(args[0])
		if lookupErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", lookupErr)
			fmt.Fprintln(os.Stderr, "Run 'safari list' to see difficulties.")
			os.Exit(1)
		}
		keys = []string{d.Key}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		for _, key := range keys {
			if err := store.ClearScores(key); err != nil {
				fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Printf("Cleared scores for %v\n", keys)
		return
	}

	for i, key := range keys {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, key); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}
}

// printScores prints the leaderboard and statistics for one difficulty.
func printScores(store *storage.Store, difficulty string) error {
	scores, err := store.TopScores(difficulty, storage.DefaultLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", difficulty)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-4s  %-8s  %-5s  %-12s  %s\n", "Rank", "Name", "Score", "Level", "Animal", "Date")
	fmt.Printf("  %-4s  %-4s  %-8s  %-5s  %-12s  %s\n", "----", "----", "-----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-4s  %-8d  %-5d  %-12s  %s\n",
			i+1, e.Name, e.Score, e.Level, e.Animal, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	all, err := store.AllScores(difficulty)
	if err != nil {
		return err
	}
	values := make([]int, len(all))
	for i, e := range all {
		values[i] = e.Score
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
	fmt.Printf("Stats: %s\n", telemetry.SummarizeInts(values))
	return nil
}
