package sheep

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
)

// bobRate converts a bob speed into phase per tick.
const bobRate = 1.0 / 6

// Body colors an eagle can be drawn with.
var eagleColors = []core.Color{core.ColorBrown, core.ColorLightBrown, core.ColorOrange}

// Hazard is an eagle flying toward the player above the ground.
type Hazard struct {
	X, Y   float64
	W, H   float64
	Reward int

	// Cosmetics fixed at creation.
	WingSpeed   float64
	BobSpeed    float64
	BobAmount   float64
	Body        core.Color
	WhiteHead   bool
	FacingRight bool

	// Animation phases advanced every tick.
	WingAngle float64
	BobPhase  float64

	cfg config.HazardConfig
}

// NewHazard creates an eagle at (x, y) with randomized cosmetics.
func NewHazard(rng *rand.Rand, x, y float64, cfg config.HazardConfig) *Hazard {
	return &Hazard{
		X:           x,
		Y:           y,
		W:           cfg.Width,
		H:           cfg.Height,
		Reward:      cfg.Points,
		WingSpeed:   uniform(rng, 0.15, 0.25),
		BobSpeed:    uniform(rng, 0.05, 0.1),
		BobAmount:   uniform(rng, 1.0, 3.0),
		Body:        eagleColors[rng.Intn(len(eagleColors))],
		WhiteHead:   rng.Float64() < 0.3,
		FacingRight: rng.Float64() < 0.8,
		cfg:         cfg,
	}
}

func (h *Hazard) Advance(speed float64) {
	h.X -= speed * h.cfg.SpeedFactor
	h.WingAngle = math.Mod(h.WingAngle+h.WingSpeed, 2*math.Pi)
	h.BobPhase += h.BobSpeed * bobRate
}

func (h *Hazard) OffField() bool {
	return h.X+h.W < 0
}

// BobOffset returns the current vertical bob.
func (h *Hazard) BobOffset() float64 {
	return math.Sin(h.BobPhase) * h.BobAmount
}

func (h *Hazard) BoundingBox() core.Rect {
	return core.NewRect(h.X, h.Y+h.BobOffset(), h.W, h.H).
		Inset(h.cfg.HitboxLeft, h.cfg.HitboxTop, h.cfg.HitboxRight, h.cfg.HitboxBottom)
}

func (h *Hazard) Points() int {
	return h.Reward
}

// WingsUp reports whether the wings are in the upper half of the flap.
func (h *Hazard) WingsUp() bool {
	return math.Sin(h.WingAngle) >= 0
}
