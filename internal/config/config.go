// Package config provides YAML-based game configuration loading,
// difficulty presets and hot reload for the runner.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains all tuning for the runner.
type RunnerConfig struct {
	Board     BoardConfig            `yaml:"board"`
	Physics   PhysicsConfig          `yaml:"physics"`
	Player    PlayerConfig           `yaml:"player"`
	Enemies   EnemyConfig            `yaml:"enemies"`
	Abilities AbilityConfig          `yaml:"abilities"`
	Economy   EconomyConfig          `yaml:"economy"`
	Sprites   map[string]SpriteStyle `yaml:"sprites"`
}

// BoardConfig defines the logical drawing surface.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines vertical motion parameters (units per frame).
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // negative = up
	DropVelocity float64 `yaml:"drop_velocity"`
}

// PlayerConfig defines the default player geometry.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig defines the enemy template, spawn cadence and speed ramp.
type EnemyConfig struct {
	Width           float64  `yaml:"width"`
	Height          float64  `yaml:"height"`
	SpawnX          float64  `yaml:"spawn_x"`
	BaseSpeed       float64  `yaml:"base_speed"` // negative = leftward
	MaxSpeed        float64  `yaml:"max_speed"`  // floor for the ramp
	RampStep        float64  `yaml:"ramp_step"`
	SpawnIntervalMS int      `yaml:"spawn_interval_ms"`
	RampIntervalMS  int      `yaml:"ramp_interval_ms"`
	MaxAlive        int      `yaml:"max_alive"`
	FlyChance       int      `yaml:"fly_chance"` // one in N enemies flies
	FlyOffset       float64  `yaml:"fly_offset"`
	Skins           []string `yaml:"skins"`
}

// SpawnInterval returns the spawn period.
func (e EnemyConfig) SpawnInterval() time.Duration {
	return time.Duration(e.SpawnIntervalMS) * time.Millisecond
}

// RampInterval returns the speed ramp period.
func (e EnemyConfig) RampInterval() time.Duration {
	return time.Duration(e.RampIntervalMS) * time.Millisecond
}

// AbilityConfig groups both abilities.
type AbilityConfig struct {
	Shotgun ShotgunConfig `yaml:"shotgun"`
	Mugen   MugenConfig   `yaml:"mugen"`
}

// ShotgunConfig defines the burst-clear ability.
type ShotgunConfig struct {
	Bonus   int     `yaml:"bonus"`
	FlashMS int     `yaml:"flash_ms"`
	Width   float64 `yaml:"width"`
}

// Flash returns how long the shotgun pose stays on screen.
func (s ShotgunConfig) Flash() time.Duration {
	return time.Duration(s.FlashMS) * time.Millisecond
}

// MugenConfig defines the invulnerability ability.
type MugenConfig struct {
	ActiveSecs   int     `yaml:"active_secs"`
	CooldownSecs int     `yaml:"cooldown_secs"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Lift         float64 `yaml:"lift"` // ground level shift while active
}

// EconomyConfig defines score-to-money conversion, shop prices and debug keys.
type EconomyConfig struct {
	MoneyPerHundred int         `yaml:"money_per_hundred"`
	DebugKeys       bool        `yaml:"debug_keys"`
	DebugGrant      int         `yaml:"debug_grant"`
	Prices          PriceConfig `yaml:"prices"`
}

// PriceConfig lists shop prices.
type PriceConfig struct {
	Shotgun    int `yaml:"shotgun"`
	ExtraScore int `yaml:"extra_score"`
}

// SpriteStyle describes how a terminal host draws a sprite.
type SpriteStyle struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Validate reports the first setting that would break the simulation.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %vx%v", c.Board.Width, c.Board.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Enemies.Width <= 0 || c.Enemies.Height <= 0 {
		errs = append(errs, errors.New("enemy size must be positive"))
	}
	if c.Enemies.SpawnIntervalMS <= 0 || c.Enemies.RampIntervalMS <= 0 {
		errs = append(errs, errors.New("enemy intervals must be positive"))
	}
	if c.Enemies.MaxAlive < 1 {
		errs = append(errs, fmt.Errorf("enemies.max_alive must be at least 1, got %d", c.Enemies.MaxAlive))
	}
	if c.Enemies.FlyChance < 1 {
		errs = append(errs, fmt.Errorf("enemies.fly_chance must be at least 1, got %d", c.Enemies.FlyChance))
	}
	if c.Physics.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be negative (up), got %v", c.Physics.JumpVelocity))
	}
	if c.Physics.DropVelocity <= 0 {
		errs = append(errs, fmt.Errorf("physics.drop_velocity must be positive (down), got %v", c.Physics.DropVelocity))
	}
	if c.Enemies.MaxSpeed > c.Enemies.BaseSpeed {
		errs = append(errs, fmt.Errorf("enemies.max_speed %v must not be slower than base_speed %v", c.Enemies.MaxSpeed, c.Enemies.BaseSpeed))
	}
	if c.Enemies.RampStep < 0 {
		errs = append(errs, errors.New("enemies.ramp_step must not be negative"))
	}
	if c.Abilities.Mugen.ActiveSecs < 1 {
		errs = append(errs, errors.New("abilities.mugen.active_secs must be at least 1"))
	}
	if c.Abilities.Mugen.CooldownSecs < 0 {
		errs = append(errs, errors.New("abilities.mugen.cooldown_secs must not be negative"))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty or unknown values
// return "" so the config file stays authoritative.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.BaseSpeed = -2
		cfg.Enemies.RampStep = 0.25
	case DifficultyHard:
		cfg.Enemies.BaseSpeed = -5
		cfg.Enemies.RampStep = 0.75
	case DifficultyFixed:
		cfg.Enemies.RampStep = 0
	}
}
