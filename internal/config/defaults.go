package config

import (
	_ "embed"
)

//go:embed defaults/mansion.yaml
var defaultMansionYAML []byte

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultMansionConfig returns the default mansion configuration.
func DefaultMansionConfig() MansionConfig {
	return MansionConfig{
		Screen: ScreenConfig{Width: 960, Height: 720},
		Layout: MansionLayout{
			MinFloors:       3,
			MaxFloors:       5,
			MinRooms:        6,
			MaxRooms:        10,
			GridW:           8,
			GridH:           5,
			CellSize:        96,
			ExtraEdgeFactor: 0.5,
			GhostChance:     0.5,
			StairsRadius:    44,
		},
		Player: MansionPlayer{
			SpawnX: 144,
			SpawnY: 144,
			Step:   16,
			Margin: 32,
			Size:   48,
		},
		Ghosts: MansionGhosts{
			Speed:      2,
			Jitter:     0.8,
			Size:       44,
			KillRadius: 40,
		},
		Tools: MansionTools{
			FlashCooldown:  40,
			FlashReach:     50,
			FlashRange:     60,
			StunTicks:      30,
			VacuumCooldown: 35,
			VacuumRange:    64,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 4, // Floors climbed
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultChaseConfig returns the default chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Arena:  ScreenConfig{Width: 900, Height: 600},
		Player: ChasePlayer{Speed: 6, Width: 32, Height: 24, HP: 100},
		Cars: ChaseCars{
			Count:    8,
			Width:    32,
			Height:   24,
			Speed:    2,
			Damage:   8,
			Interval: 36, // 0.6s at 60fps
		},
		Cops: ChaseCops{
			Width:          36,
			Height:         28,
			BaseSpeed:      2.7,
			SpeedPerWanted: 0.5,
			Damage:         18,
			Interval:       42, // 0.7s at 60fps
		},
		Gameplay: ChaseGameplay{MaxWanted: 3},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // 2 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				CountIncrease:   4,
			},
		},
	}
}

// DefaultBricksConfig returns the default brick breaker configuration.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		Field: ScreenConfig{Width: 800, Height: 600},
		Bricks: BricksGrid{
			Rows:      6,
			Cols:      10,
			Gap:       4,
			Height:    25,
			TopOffset: 60,
		},
		Paddle: BricksPaddle{Width: 110, Height: 15, Offset: 60, Speed: 9},
		Ball:   BricksBall{Radius: 8, Speed: 5, MaxAngle: 60},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "none"},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.6},
		},
	}
}

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Screen: ScreenConfig{Width: 512, Height: 448},
		Physics: PlatformerPhysics{
			Gravity:   0.35,
			Tile:      32,
			RunSpeed:  2.4,
			JumpSpeed: -7.6,
		},
		Player: PlatformerPlayer{Width: 32, Height: 32, HP: 3, HurtInterval: 60},
		Campaign: PlatformerCampaign{
			Worlds:         5,
			LevelsPerWorld: 3,
			LengthScreens:  2,
		},
		Boss: PlatformerBoss{
			Width:      32,
			Height:     32,
			HP:         3,
			Speed:      1.8,
			JumpChance: 0.015,
			JumpSpeed:  -8,
			LatchStomp: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 4, // Worlds cleared
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mansion":
		return defaultMansionYAML
	case "chase":
		return defaultChaseYAML
	case "bricks":
		return defaultBricksYAML
	case "platformer":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
