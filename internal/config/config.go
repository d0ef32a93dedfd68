// Package config provides YAML-based configuration loading and difficulty
// presets for the sheep runner.
package config

import (
	"errors"
	"fmt"
)

// SheepConfig contains all tunables of the simulation.
type SheepConfig struct {
	Field       FieldConfig      `yaml:"field"`
	Physics     PhysicsConfig    `yaml:"physics"`
	Speed       SpeedConfig      `yaml:"speed"`
	Player      PlayerConfig     `yaml:"player"`
	Obstacles   ObstacleConfig   `yaml:"obstacles"`
	Hazards     HazardConfig     `yaml:"hazards"`
	Decorations DecorationConfig `yaml:"decorations"`
	Particles   ParticleConfig   `yaml:"particles"`
	Scoring     ScoringConfig    `yaml:"scoring"`
}

// FieldConfig defines the logical playfield.
type FieldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Y of the ground surface
}

// PhysicsConfig defines player physics.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"`       // Negative = up
	DoubleJumpFactor float64 `yaml:"double_jump_factor"` // Impulse multiplier for the second charge
}

// SpeedConfig defines the scroll speed schedule.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`
	Max       float64 `yaml:"max"`
	Increment float64 `yaml:"increment"` // Added every tick while playing
}

// PlayerConfig defines the player's pose and hitbox inset.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	HitboxLeft  float64 `yaml:"hitbox_left"`
	HitboxRight float64 `yaml:"hitbox_right"`
}

// ObstacleConfig defines hurdle spawning.
type ObstacleConfig struct {
	MinDistance float64      `yaml:"min_distance"`
	SpeedFactor float64      `yaml:"speed_factor"`
	HitboxInset float64      `yaml:"hitbox_inset"` // Applied to both horizontal sides
	Tiers       []TierConfig `yaml:"tiers"`
}

// TierConfig is one hurdle variant chosen by weighted draw.
type TierConfig struct {
	Name   string  `yaml:"name"`
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
	Points int     `yaml:"points"`
	Weight float64 `yaml:"weight"`
}

// HazardConfig defines eagle spawning.
type HazardConfig struct {
	UnlockScore    int     `yaml:"unlock_score"`
	WarningMargin  int     `yaml:"warning_margin"` // Warn this many points before unlock
	MaxConcurrent  int     `yaml:"max_concurrent"`
	BaseChance     float64 `yaml:"base_chance"`
	ChancePerPoint float64 `yaml:"chance_per_point"`
	MaxChance      float64 `yaml:"max_chance"`
	SpeedFactor    float64 `yaml:"speed_factor"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Points         int     `yaml:"points"`
	MinAltitude    float64 `yaml:"min_altitude"` // Above ground
	MaxAltitude    float64 `yaml:"max_altitude"`
	HitboxLeft     float64 `yaml:"hitbox_left"`
	HitboxTop      float64 `yaml:"hitbox_top"`
	HitboxRight    float64 `yaml:"hitbox_right"`
	HitboxBottom   float64 `yaml:"hitbox_bottom"`
}

// DecorationConfig defines cloud spawning.
type DecorationConfig struct {
	SpawnChance  float64 `yaml:"spawn_chance"`
	SpeedFactor  float64 `yaml:"speed_factor"`
	InitialCount int     `yaml:"initial_count"`
	MinWidth     float64 `yaml:"min_width"`
	MaxWidth     float64 `yaml:"max_width"`
	MinHeight    float64 `yaml:"min_height"`
	MaxHeight    float64 `yaml:"max_height"`
	MinY         float64 `yaml:"min_y"`
}

// ParticleConfig defines dust and burst particles.
type ParticleConfig struct {
	Lifetime        int     `yaml:"lifetime"` // Ticks
	BurstCount      int     `yaml:"burst_count"`
	DoubleJumpCount int     `yaml:"double_jump_count"`
	RunChance       float64 `yaml:"run_chance"`
	Gravity         float64 `yaml:"gravity"`
	VelocityScale   float64 `yaml:"velocity_scale"`
	BurstAngle      float64 `yaml:"burst_angle"` // Degrees either side of horizontal
	BurstMinSpeed   float64 `yaml:"burst_min_speed"`
	BurstMaxSpeed   float64 `yaml:"burst_max_speed"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	JumpPoints     int `yaml:"jump_points"`
	MilestoneEvery int `yaml:"milestone_every"`
	PopupTicks     int `yaml:"popup_ticks"`
}

// Validate checks the configuration and reports every invalid field.
func (c SheepConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	probability := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	if c.Field.GroundY <= 0 || c.Field.GroundY > c.Field.Height {
		errs = append(errs, fmt.Errorf("field.ground_y must be within (0, %v], got %v", c.Field.Height, c.Field.GroundY))
	}

	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative (up), got %v", c.Physics.JumpImpulse))
	}
	positive("physics.gravity", c.Physics.Gravity)

	positive("speed.initial", c.Speed.Initial)
	if c.Speed.Max < c.Speed.Initial {
		errs = append(errs, fmt.Errorf("speed.max (%v) must not be below speed.initial (%v)", c.Speed.Max, c.Speed.Initial))
	}
	if c.Speed.Increment < 0 {
		errs = append(errs, fmt.Errorf("speed.increment must not be negative, got %v", c.Speed.Increment))
	}

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)

	positive("obstacles.min_distance", c.Obstacles.MinDistance)
	if len(c.Obstacles.Tiers) == 0 {
		errs = append(errs, errors.New("obstacles.tiers must not be empty"))
	}
	var total float64
	for i, tier := range c.Obstacles.Tiers {
		if tier.Weight < 0 {
			errs = append(errs, fmt.Errorf("obstacles.tiers[%d].weight must not be negative", i))
		}
		positive(fmt.Sprintf("obstacles.tiers[%d].width", i), tier.Width)
		positive(fmt.Sprintf("obstacles.tiers[%d].height", i), tier.Height)
		total += tier.Weight
	}
	if len(c.Obstacles.Tiers) > 0 && total <= 0 {
		errs = append(errs, errors.New("obstacles.tiers weights must sum to a positive value"))
	}

	if c.Hazards.MaxConcurrent < 0 {
		errs = append(errs, fmt.Errorf("hazards.max_concurrent must not be negative, got %d", c.Hazards.MaxConcurrent))
	}
	probability("hazards.base_chance", c.Hazards.BaseChance)
	probability("hazards.max_chance", c.Hazards.MaxChance)
	if c.Hazards.MaxAltitude < c.Hazards.MinAltitude {
		errs = append(errs, errors.New("hazards.max_altitude must not be below hazards.min_altitude"))
	}
	probability("decorations.spawn_chance", c.Decorations.SpawnChance)
	probability("particles.run_chance", c.Particles.RunChance)
	if c.Particles.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("particles.lifetime must be positive, got %d", c.Particles.Lifetime))
	}
	if c.Scoring.MilestoneEvery <= 0 {
		errs = append(errs, fmt.Errorf("scoring.milestone_every must be positive, got %d", c.Scoring.MilestoneEvery))
	}

	return errors.Join(errs...)
}
