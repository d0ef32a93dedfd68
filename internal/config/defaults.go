package config

import (
	_ "embed"
)

//go:embed defaults/sheepjump.yaml
var defaultSheepYAML []byte

// DefaultSheepConfig returns the built-in configuration.
// It mirrors defaults/sheepjump.yaml and backs it up if the embed is unreadable.
func DefaultSheepConfig() SheepConfig {
	return SheepConfig{
		Field: FieldConfig{
			Width:   800,
			Height:  400,
			GroundY: 350,
		},
		Physics: PhysicsConfig{
			Gravity:          0.7,
			JumpImpulse:      -13,
			DoubleJumpFactor: 0.8,
		},
		Speed: SpeedConfig{
			Initial:   4.0,
			Max:       8.0,
			Increment: 0.0002,
		},
		Player: PlayerConfig{
			X:           80,
			Width:       44,
			Height:      40,
			HitboxLeft:  5,
			HitboxRight: 9,
		},
		Obstacles: ObstacleConfig{
			MinDistance: 300,
			SpeedFactor: 1.0,
			HitboxInset: 5,
			Tiers: []TierConfig{
				{Name: "low", Height: 30, Width: 30, Points: 5, Weight: 0.3},
				{Name: "normal", Height: 40, Width: 30, Points: 10, Weight: 0.4},
				{Name: "high", Height: 50, Width: 30, Points: 15, Weight: 0.2},
				{Name: "double", Height: 40, Width: 50, Points: 20, Weight: 0.1},
			},
		},
		Hazards: HazardConfig{
			UnlockScore:    100,
			WarningMargin:  20,
			MaxConcurrent:  2,
			BaseChance:     0.005,
			ChancePerPoint: 1.0 / 3000,
			MaxChance:      0.02,
			SpeedFactor:    1.2,
			Width:          32,
			Height:         25,
			Points:         10,
			MinAltitude:    70,
			MaxAltitude:    150,
			HitboxLeft:     5,
			HitboxTop:      3,
			HitboxRight:    5,
			HitboxBottom:   5,
		},
		Decorations: DecorationConfig{
			SpawnChance:  0.01,
			SpeedFactor:  0.5,
			InitialCount: 3,
			MinWidth:     60,
			MaxWidth:     100,
			MinHeight:    20,
			MaxHeight:    30,
			MinY:         50,
		},
		Particles: ParticleConfig{
			Lifetime:        30,
			BurstCount:      5,
			DoubleJumpCount: 15,
			RunChance:       0.3,
			Gravity:         0.1,
			VelocityScale:   0.5,
			BurstAngle:      30,
			BurstMinSpeed:   1,
			BurstMaxSpeed:   2,
		},
		Scoring: ScoringConfig{
			JumpPoints:     5,
			MilestoneEvery: 100,
			PopupTicks:     60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSheepYAML
}
