package sheep

import (
	"math/rand"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
)

// Obstacle is a hurdle standing on the ground.
type Obstacle struct {
	Tier   string
	X, Y   float64
	W, H   float64
	Reward int

	speedFactor float64
	inset       float64
}

// NewObstacle creates a hurdle of the given tier with its left edge at x.
func NewObstacle(tier config.TierConfig, x, groundY float64, cfg config.ObstacleConfig) *Obstacle {
	return &Obstacle{
		Tier:        tier.Name,
		X:           x,
		Y:           groundY - tier.Height,
		W:           tier.Width,
		H:           tier.Height,
		Reward:      tier.Points,
		speedFactor: cfg.SpeedFactor,
		inset:       cfg.HitboxInset,
	}
}

func (o *Obstacle) Advance(speed float64) {
	o.X -= speed * o.speedFactor
}

func (o *Obstacle) OffField() bool {
	return o.X+o.W < 0
}

func (o *Obstacle) BoundingBox() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H).Inset(o.inset, 0, o.inset, 0)
}

func (o *Obstacle) Points() int {
	return o.Reward
}

// Bounds returns the visual box.
func (o *Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// pickTier draws a tier with probability proportional to its weight.
func pickTier(rng *rand.Rand, tiers []config.TierConfig) config.TierConfig {
	var total float64
	for _, t := range tiers {
		total += t.Weight
	}
	roll := rng.Float64() * total
	for _, t := range tiers {
		if roll < t.Weight {
			return t
		}
		roll -= t.Weight
	}
	return tiers[len(tiers)-1]
}
