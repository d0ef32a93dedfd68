package sheep

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
)

// Landing dust is shorter lived and sprays upward.
const (
	landLifetime = 20
	landMinAngle = -150
	landMaxAngle = -30
	landMaxSpeed = 3
)

// Particle is a short-lived dust mote.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   core.Color
	Life    int   // Ticks remaining
	MaxLife int   // Ticks at creation
	Alpha   uint8 // 255 when fresh, 0 when expired
}

// Particles owns the particle pool.
type Particles struct {
	cfg   config.ParticleConfig
	rng   *rand.Rand
	items []Particle
}

// NewParticles creates an empty pool drawing randomness from rng.
func NewParticles(cfg config.ParticleConfig, rng *rand.Rand) *Particles {
	return &Particles{
		cfg:   cfg,
		rng:   rng,
		items: make([]Particle, 0, 64),
	}
}

// EmitRun sometimes emits a single drifting particle at the player's feet.
func (p *Particles) EmitRun(x, y float64) {
	if p.rng.Float64() >= p.cfg.RunChance {
		return
	}
	color := p.dustColor()
	vx := uniform(p.rng, -0.2, 0.2)
	vy := uniform(p.rng, -0.3, 0)
	p.add(x, y, vx, vy, color, p.cfg.Lifetime)
}

// EmitBurst emits count particles spreading forward and down.
// Zero count uses the configured default; ColorDefault picks random dust colors.
func (p *Particles) EmitBurst(x, y float64, color core.Color, count int) {
	if count <= 0 {
		count = p.cfg.BurstCount
	}
	for range count {
		c := color
		if c == core.ColorDefault {
			c = p.dustColor()
		}
		angle := uniform(p.rng, -p.cfg.BurstAngle, p.cfg.BurstAngle)
		speed := uniform(p.rng, p.cfg.BurstMinSpeed, p.cfg.BurstMaxSpeed)
		vx, vy := polar(angle, speed)
		p.add(x, y+10, vx, vy, c, p.cfg.Lifetime)
	}
}

// EmitLand sprays a double burst upward when the player touches down.
func (p *Particles) EmitLand(x, y float64) {
	for range p.cfg.BurstCount * 2 {
		angle := uniform(p.rng, landMinAngle, landMaxAngle)
		speed := uniform(p.rng, p.cfg.BurstMinSpeed, landMaxSpeed)
		vx, vy := polar(angle, speed)
		p.add(x, y, vx, vy, p.dustColor(), landLifetime)
	}
}

// Advance moves every particle one tick and drops expired ones.
func (p *Particles) Advance() {
	kept := p.items[:0]
	for _, pt := range p.items {
		pt.VY += p.cfg.Gravity
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Life--
		if pt.Life > 0 {
			pt.Alpha = uint8(255 * pt.Life / pt.MaxLife)
		} else {
			pt.Alpha = 0
		}
		if pt.Life <= 0 || pt.Alpha == 0 {
			continue
		}
		kept = append(kept, pt)
	}
	clear(p.items[len(kept):])
	p.items = kept
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	return len(p.items)
}

// Items returns a copy of the live particles.
func (p *Particles) Items() []Particle {
	out := make([]Particle, len(p.items))
	copy(out, p.items)
	return out
}

// Clear removes all particles.
func (p *Particles) Clear() {
	p.items = p.items[:0]
}

func (p *Particles) add(x, y, vx, vy float64, c core.Color, life int) {
	if life <= 0 {
		life = 1
	}
	p.items = append(p.items, Particle{
		X:       x,
		Y:       y,
		VX:      vx * p.cfg.VelocityScale,
		VY:      vy * p.cfg.VelocityScale,
		Color:   c,
		Life:    life,
		MaxLife: life,
		Alpha:   255,
	})
}

func (p *Particles) dustColor() core.Color {
	return core.DustColors[p.rng.Intn(len(core.DustColors))]
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// polar converts an angle in degrees and a speed into a velocity.
func polar(deg, speed float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return speed * math.Cos(rad), speed * math.Sin(rad)
}
