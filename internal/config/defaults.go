package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Board: BoardConfig{
			Width:  1000,
			Height: 450,
		},
		Physics: PhysicsConfig{
			Gravity:      0.23,
			JumpVelocity: -10,
			DropVelocity: 30,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  62,
			Height: 76,
		},
		Enemies: EnemyConfig{
			Width:           70,
			Height:          105,
			SpawnX:          920,
			BaseSpeed:       -3,
			MaxSpeed:        -20,
			RampStep:        0.5,
			SpawnIntervalMS: 1200,
			RampIntervalMS:  1000,
			MaxAlive:        5,
			FlyChance:       5,
			FlyOffset:       105,
			Skins: []string{
				"enemy-tiktok",
				"enemy-facebook",
				"enemy-fivem",
				"enemy-roblox",
				"enemy-instagram",
			},
		},
		Abilities: AbilityConfig{
			Shotgun: ShotgunConfig{
				Bonus:   100,
				FlashMS: 500,
				Width:   107,
			},
			Mugen: MugenConfig{
				ActiveSecs:   5,
				CooldownSecs: 15,
				Width:        108,
				Height:       107,
				Lift:         31,
			},
		},
		Economy: EconomyConfig{
			MoneyPerHundred: 10,
			DebugGrant:      1000,
			Prices: PriceConfig{
				Shotgun:    50,
				ExtraScore: 200,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
