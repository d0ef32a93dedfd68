package sheep

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sheepjump/internal/config"
)

// Spawner decides when and where new entities enter the field.
type Spawner struct {
	cfg *config.SheepConfig
	rng *rand.Rand
}

// NewSpawner creates a spawner sharing the game's RNG.
func NewSpawner(cfg *config.SheepConfig, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// SpawnObstacle appends a hurdle at the right edge when the field is empty
// or the rearmost hurdle has cleared the minimum distance.
func (s *Spawner) SpawnObstacle(obstacles *Registry[*Obstacle]) bool {
	width := s.cfg.Field.Width
	if last, ok := obstacles.Last(); ok && width-(last.X+last.W) < s.cfg.Obstacles.MinDistance {
		return false
	}
	tier := pickTier(s.rng, s.cfg.Obstacles.Tiers)
	obstacles.Append(NewObstacle(tier, width, s.cfg.Field.GroundY, s.cfg.Obstacles))
	return true
}

// HazardChance returns the per-tick eagle spawn probability at the given score.
// It is zero below the unlock threshold.
func (s *Spawner) HazardChance(score int) float64 {
	h := s.cfg.Hazards
	if score < h.UnlockScore {
		return 0
	}
	return math.Min(h.BaseChance+float64(score-h.UnlockScore)*h.ChancePerPoint, h.MaxChance)
}

// SpawnHazard may append an eagle at the right edge.
func (s *Spawner) SpawnHazard(hazards *Registry[*Hazard], score int) bool {
	h := s.cfg.Hazards
	if score < h.UnlockScore || hazards.Len() >= h.MaxConcurrent {
		return false
	}
	if s.rng.Float64() >= s.HazardChance(score) {
		return false
	}
	ground := s.cfg.Field.GroundY
	y := uniform(s.rng, ground-h.MaxAltitude, ground-h.MinAltitude)
	hazards.Append(NewHazard(s.rng, s.cfg.Field.Width, y, h))
	return true
}

// SpawnCloud may append a cloud at the right edge.
func (s *Spawner) SpawnCloud(clouds *Registry[*Cloud]) bool {
	if s.rng.Float64() >= s.cfg.Decorations.SpawnChance {
		return false
	}
	clouds.Append(s.newCloud(s.cfg.Field.Width))
	return true
}

// SeedClouds fills the sky with the initial clouds at random positions.
func (s *Spawner) SeedClouds(clouds *Registry[*Cloud]) {
	for range s.cfg.Decorations.InitialCount {
		clouds.Append(s.newCloud(s.rng.Float64() * s.cfg.Field.Width))
	}
}

func (s *Spawner) newCloud(x float64) *Cloud {
	d := s.cfg.Decorations
	maxY := math.Max(d.MinY, s.cfg.Field.Height/3)
	return &Cloud{
		X:           x,
		Y:           uniform(s.rng, d.MinY, maxY),
		W:           uniform(s.rng, d.MinWidth, d.MaxWidth),
		H:           uniform(s.rng, d.MinHeight, d.MaxHeight),
		speedFactor: d.SpeedFactor,
	}
}
