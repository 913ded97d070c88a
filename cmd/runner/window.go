package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skill-runner/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there. Controls match the terminal
version; Esc closes the window.

Examples:
  runner window
  runner window --difficulty easy --profile alice`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) error {
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

	return gui.Run(gui.Options{
		Config:  cfg,
		Data:    data,
		Profile: profileName(),
		Store:   store,
		Audio:   sound,
		Logger:  logger,
		FPS:     flagFPS,
		Seed:    flagSeed,
	})
}
