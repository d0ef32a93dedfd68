package sheep

import (
	"math"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
)

// MaxCharges is the number of jumps available between landings.
const MaxCharges = 2

const (
	legFrames    = 6
	legFrameStep = 0.25
)

// Player is the sheep.
type Player struct {
	X, Y     float64
	W, H     float64
	VY       float64
	Charges  int
	Grounded bool
	LegFrame float64 // Running animation phase in [0, 6)

	groundY float64
	body    config.PlayerConfig
	physics config.PhysicsConfig
	hitbox  core.Rect
}

// NewPlayer creates a player standing on the ground.
func NewPlayer(field config.FieldConfig, body config.PlayerConfig, physics config.PhysicsConfig) *Player {
	p := &Player{
		X:       body.X,
		W:       body.Width,
		H:       body.Height,
		groundY: field.GroundY,
		body:    body,
		physics: physics,
	}
	p.Reset()
	return p
}

// Reset restores the spawn pose.
func (p *Player) Reset() {
	p.Y = p.groundTop()
	p.VY = 0
	p.Charges = MaxCharges
	p.Grounded = true
	p.LegFrame = 0
	p.updateHitbox()
}

// Jump spends one charge. The second charge gives a weaker impulse.
// It reports false, changing nothing, when no charges remain.
func (p *Player) Jump() bool {
	if p.Charges <= 0 {
		return false
	}
	if p.Charges == MaxCharges {
		p.VY = p.physics.JumpImpulse
	} else {
		p.VY = p.physics.JumpImpulse * p.physics.DoubleJumpFactor
	}
	p.Charges--
	p.Grounded = false
	return true
}

// Advance integrates gravity for one tick.
// It reports whether the player touched down during this tick.
func (p *Player) Advance() bool {
	p.VY += p.physics.Gravity
	p.Y += p.VY

	landed := false
	if p.Y >= p.groundTop() {
		landed = !p.Grounded
		p.Y = p.groundTop()
		p.VY = 0
		p.Grounded = true
		p.Charges = MaxCharges
		p.LegFrame = math.Mod(p.LegFrame+legFrameStep, legFrames)
	}
	p.updateHitbox()
	return landed
}

// Hitbox returns the collision box computed at the last advance.
func (p *Player) Hitbox() core.Rect {
	return p.hitbox
}

// Bounds returns the visual box.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Feet returns the point under the middle of the player.
func (p *Player) Feet() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H
}

func (p *Player) groundTop() float64 {
	return p.groundY - p.H
}

func (p *Player) updateHitbox() {
	p.hitbox = p.Bounds().Inset(p.body.HitboxLeft, 0, p.body.HitboxRight, 0)
}
