package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	require.NoError(t, err)

	def := DefaultRunnerConfig()
	cfg.Sprites = nil
	assert.Equal(t, def, cfg)
}

func TestLoadRunnerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 0.5\nenemies:\n  max_alive: 3\n"), 0o600))

	cfg, err := LoadRunner(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Physics.Gravity)
	assert.Equal(t, 3, cfg.Enemies.MaxAlive)
	// Untouched values keep their defaults
	assert.Equal(t, -10.0, cfg.Physics.JumpVelocity)
	assert.Equal(t, 1200*time.Millisecond, cfg.Enemies.SpawnInterval())
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRunnerRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemies:\n  max_alive: 0\n  fly_chance: 0\n"), 0o600))

	_, err := LoadRunner(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_alive")
	assert.Contains(t, err.Error(), "fly_chance")
}

func TestValidateRejectsBrokenTuning(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		want   string
	}{
		{"jump pointing down", func(c *RunnerConfig) { c.Physics.JumpVelocity = 10 }, "jump_velocity"},
		{"zero jump", func(c *RunnerConfig) { c.Physics.JumpVelocity = 0 }, "jump_velocity"},
		{"drop pointing up", func(c *RunnerConfig) { c.Physics.DropVelocity = -30 }, "drop_velocity"},
		{"zero drop", func(c *RunnerConfig) { c.Physics.DropVelocity = 0 }, "drop_velocity"},
		{"speed cap slower than start", func(c *RunnerConfig) { c.Enemies.MaxSpeed = -1 }, "max_speed"},
		{"negative cooldown", func(c *RunnerConfig) { c.Abilities.Mugen.CooldownSecs = -1 }, "cooldown_secs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateAcceptsDefaultsAndPresets(t *testing.T) {
	require.NoError(t, DefaultRunnerConfig().Validate())

	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, p)
		assert.NoError(t, cfg.Validate(), p)
	}

	cfg := DefaultRunnerConfig()
	cfg.Enemies.MaxSpeed = cfg.Enemies.BaseSpeed
	cfg.Abilities.Mugen.CooldownSecs = 0
	assert.NoError(t, cfg.Validate(), "equal speeds and no cooldown are allowed")
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		baseSpeed float64
		rampStep  float64
	}{
		{DifficultyEasy, -2, 0.25},
		{DifficultyNormal, -3, 0.5},
		{DifficultyHard, -5, 0.75},
		{DifficultyFixed, -3, 0},
		{"", -3, 0.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, tc.preset)
			assert.Equal(t, tc.baseSpeed, cfg.Enemies.BaseSpeed)
			assert.Equal(t, tc.rampStep, cfg.Enemies.RampStep)
		})
	}
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParsePreset("hard"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("nightmare"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset(""))
}

func TestResolvePathPrefersCustom(t *testing.T) {
	assert.Equal(t, "/tmp/x.yaml", ResolvePath("/tmp/x.yaml"))
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 0.3\n"), 0o600))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 0.9\n"), 0o600))

	select {
	case cfg := <-w.Updates:
		assert.Equal(t, 0.9, cfg.Physics.Gravity)
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatcherReportsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 1000\n"), 0o600))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("board: [not, a, map"), 0o600))

	select {
	case err := <-w.Errors:
		assert.Error(t, err)
	case cfg := <-w.Updates:
		t.Fatalf("expected an error, got config %+v", cfg.Board)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watcher error")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	w, err := NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, open := <-w.Updates
	assert.False(t, open)
}
