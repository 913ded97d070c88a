package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skill-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the current terminal.

Controls:
  W/Up/Space  - Jump
  S/Down      - Drop back to the ground
  Q           - Fire the shotgun (clears the board)
  E           - Activate mugen (temporary invulnerability)
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot
  Esc         - Leave the game
  Ctrl+C      - Quit

Difficulty options:
  easy   - Slower start, gentle speed ramp
  normal - Values from the config file
  hard   - Faster start, steep speed ramp
  fixed  - No speed ramp

Examples:
  runner play
  runner play --difficulty hard
  runner play --config ./runner.yaml --watch
  runner play --seed 42 --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, data := openProfile(logger)
	if store != nil {
		defer store.Close()
	}

	sound, closeAudio := newAudio(logger)
	defer closeAudio()

	watcher := startWatcher(logger)
	if watcher != nil {
		defer watcher.Close()
	}

	_, err = tui.Run(tui.GameOptions{
		Config:  cfg,
		Data:    data,
		Profile: profileName(),
		Store:   store,
		Audio:   sound,
		Logger:  logger,
		Runtime: terminalRuntime(),
	}, watcher)
	return err
}
