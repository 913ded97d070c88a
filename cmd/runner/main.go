// runner is an obstacle-dodging runner game for the terminal, a desktop
// window, or remote players over SSH.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner window            - Play in a desktop window
//	runner menu              - Lobby with shop and scoreboard
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show high scores
//	runner profile           - Show a profile's wallet
//	runner shop <item>       - Buy an item for a profile
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/runner.db)
//	--profile <name>   - Profile to play and save as
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagProfile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Skill Runner - jump, duck and blast your way past obstacles",
	Long: `Skill Runner is an endless runner. Obstacles scroll in from the right
and speed up every second; dodge them to score, and spend the money you
earn on abilities.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Lobby with shop and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  profile  - Show a profile's wallet
  shop     - Buy an item

Examples:
  runner play
  runner window --difficulty hard
  runner menu --profile alice
  runner serve --ssh :2222
  runner shop shotgun`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/runner.db", "Path to scores and profiles database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Profile name (default: player)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(shopCmd)
}
