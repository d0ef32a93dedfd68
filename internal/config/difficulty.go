package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every known preset in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplySheepPreset modifies the config based on a difficulty preset.
func ApplySheepPreset(cfg *SheepConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial *= 0.875
		cfg.Speed.Max *= 0.875
		cfg.Speed.Increment *= 0.5
		cfg.Hazards.UnlockScore += cfg.Hazards.UnlockScore / 2
	case DifficultyHard:
		cfg.Speed.Initial *= 1.25
		cfg.Speed.Max *= 1.25
		cfg.Speed.Increment *= 2
		cfg.Hazards.UnlockScore /= 2
		cfg.Hazards.MaxConcurrent++
	case DifficultyFixed:
		cfg.Speed.Increment = 0
	}
}

// SpeedSchedule advances the scroll speed once per tick.
type SpeedSchedule struct {
	cfg SpeedConfig
}

// NewSpeedSchedule creates a schedule for the given speed settings.
func NewSpeedSchedule(cfg SpeedConfig) SpeedSchedule {
	return SpeedSchedule{cfg: cfg}
}

// Initial returns the speed a round starts with.
func (s SpeedSchedule) Initial() float64 {
	return s.cfg.Initial
}

// Next returns the speed after one more tick, capped at the maximum.
func (s SpeedSchedule) Next(current float64) float64 {
	return math.Min(current+s.cfg.Increment, s.cfg.Max)
}

// Level reports how far current sits between initial and max speed (0.0 to 1.0).
func (s SpeedSchedule) Level(current float64) float64 {
	span := s.cfg.Max - s.cfg.Initial
	if span <= 0 {
		return 0
	}
	return clampF((current-s.cfg.Initial)/span, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
