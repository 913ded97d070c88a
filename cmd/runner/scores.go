package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skill-runner/internal/storage"
)

var (
	flagAllProfiles bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores for a profile, or for everyone with --all.

Examples:
  runner scores
  runner scores --profile alice
  runner scores --all --limit 20
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAllProfiles, "all", false, "Show scores of every profile")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the selected scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	profile := profileName()
	title := profile
	if flagAllProfiles {
		profile = ""
		title = "all players"
	}

	if flagClear {
		if err := store.ClearScores(profile); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return nil
	}

	scores, err := store.TopScores(profile, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Money", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %s\n", i+1, entry.Profile, entry.Score, entry.Earned, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetStats(profile); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Earned: %d\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.TotalEarned)
	}
	return nil
}
