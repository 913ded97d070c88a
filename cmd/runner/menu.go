package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skill-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the lobby with shop and scoreboard",
	Long: `Start the runner in interactive lobby mode.

The lobby shows your wallet, lets you buy abilities, view the scoreboard
and start a run. Leaving a run with Esc returns to the lobby. With --watch
the config file is read again before every run.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  runner menu
  runner menu --profile alice
  runner menu --fps 30 --db ./runner.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	rt := terminalRuntime()

	// Menu loop
	for {
		choice, err := tui.RunMenu(data, profileName(), cfg.Economy.Prices, store, rt)
		if err != nil {
			return err
		}

		switch choice {
		case tui.MenuChoiceScores:
			if store == nil {
				fmt.Fprintln(os.Stderr, "Scoreboard unavailable without a database")
				return nil
			}
			goBack, err := tui.RunScoreboard(store, profileName(), rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			if flagWatch {
				// Pick up edits made since the last run.
				if fresh, err := loadConfig(); err == nil {
					cfg = fresh
				} else {
					logger.Warn("config reload failed", "error", err)
				}
			}
			goBack, err := tui.Run(tui.GameOptions{
				Config:  cfg,
				Data:    data,
				Profile: profileName(),
				Store:   store,
				Audio:   sound,
				Logger:  logger,
				Runtime: rt,
			}, nil)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
