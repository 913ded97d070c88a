package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skill-runner/internal/audio"
	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/core"
	"github.com/vovakirdan/skill-runner/internal/runner"
	"github.com/vovakirdan/skill-runner/internal/storage"
)

// Game flags shared by play, window and menu.
var (
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
	flagWatch      bool
	flagMute       bool
	flagVolume     float64
	flagLogFile    string
)

func profileName() string {
	if flagProfile == "" {
		return storage.DefaultProfile
	}
	return flagProfile
}

// loadConfig reads the runner config and applies the command line
// overrides on top.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyRunnerPreset(&cfg, config.ParsePreset(flagDifficulty))
	if flagDebug {
		cfg.Economy.DebugKeys = true
	}
	return cfg, cfg.Validate()
}

// newLogger writes to --log when set. The terminal is owned by the game,
// so without a file everything is discarded.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "runner",
	})
	return logger, func() { f.Close() }, nil
}

// newAudio opens the speaker unless muted. A missing audio device falls
// back to silence.
func newAudio(logger *log.Logger) (runner.Audio, func()) {
	if flagMute {
		return audio.Nop{}, func() {}
	}
	engine := audio.NewEngine(flagVolume, logger)
	if err := engine.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Nop{}, func() {}
	}
	return engine, engine.Close
}

// terminalRuntime sizes the runtime config to the current terminal.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openProfile opens the store and loads the active profile. A store that
// cannot be opened leaves the game playable with a fresh wallet.
func openProfile(logger *log.Logger) (*storage.Store, *runner.GameData) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil, runner.NewGameData()
	}
	data, err := store.LoadProfile(profileName())
	if err != nil {
		logger.Warn("could not load profile", "profile", profileName(), "error", err)
		data = runner.NewGameData()
	}
	return store, data
}

// startWatcher watches the resolved config file when --watch is set.
func startWatcher(logger *log.Logger) *config.Watcher {
	if !flagWatch {
		return nil
	}
	path := config.ResolvePath(flagConfig)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch needs a config file; using built-in defaults")
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	logger.Info("watching config", "path", w.Path())
	return w
}

func addGameFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	fs.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	fs.BoolVar(&flagDebug, "debug", false, "Enable F2 (add money) and F4 (reset money) keys")
	fs.BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	fs.BoolVar(&flagMute, "mute", false, "Disable sound effects")
	fs.Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
	fs.StringVar(&flagLogFile, "log", "", "Write logs to this file")
}
