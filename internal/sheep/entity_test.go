package sheep

import (
	"math"
	"testing"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
)

func normalTier() config.TierConfig {
	return config.TierConfig{Name: "normal", Height: 40, Width: 30, Points: 10, Weight: 1}
}

func TestRegistryCompaction(t *testing.T) {
	cfg := config.DefaultSheepConfig().Obstacles
	var reg Registry[*Obstacle]
	a := NewObstacle(normalTier(), 5, 350, cfg)
	b := NewObstacle(normalTier(), 100, 350, cfg)
	c := NewObstacle(normalTier(), 9, 350, cfg)
	reg.Append(a)
	reg.Append(b)
	reg.Append(c)

	gone := reg.Advance(40)
	if len(gone) != 2 || gone[0] != a || gone[1] != c {
		t.Fatalf("expected a and c removed in order, got %v", gone)
	}
	if reg.Len() != 1 || reg.Items()[0] != b {
		t.Errorf("expected only b to remain")
	}

	if gone := reg.Advance(0); len(gone) != 0 {
		t.Error("removed entities must not be reported twice")
	}
}

func TestObstacleCreditedOnceAfterCrossing(t *testing.T) {
	cfg := config.DefaultSheepConfig()
	var reg Registry[*Obstacle]
	reg.Append(NewObstacle(normalTier(), cfg.Field.Width, cfg.Field.GroundY, cfg.Obstacles))
	scorer := NewScorer(100)

	speed := 4.0
	// The obstacle is gone once its trailing edge passes x = 0.
	want := int(math.Ceil((cfg.Field.Width + 30) / speed))
	credits := 0
	crossedAt := 0
	for tick := 1; tick <= want+50; tick++ {
		for _, o := range reg.Advance(speed) {
			scorer.CreditAvoid(o.Points())
			credits++
			crossedAt = tick
		}
	}
	if credits != 1 {
		t.Fatalf("obstacle credited %d times, expected once", credits)
	}
	if crossedAt != want {
		t.Errorf("obstacle left after %d ticks, expected %d", crossedAt, want)
	}
	if scorer.EventScore() != 10 {
		t.Errorf("event score = %d, expected 10", scorer.EventScore())
	}
}

func TestObstacleHitbox(t *testing.T) {
	o := NewObstacle(normalTier(), 200, 350, config.DefaultSheepConfig().Obstacles)
	hb := o.BoundingBox()
	if hb != core.NewRect(205, 310, 20, 40) {
		t.Errorf("hitbox = %+v", hb)
	}
}

func TestHazardMotion(t *testing.T) {
	cfg := config.DefaultSheepConfig().Hazards
	h := NewHazard(testRNG(), 800, 250, cfg)

	h.Advance(5)
	if h.X != 800-5*1.2 {
		t.Errorf("hazard should move 1.2x speed, x=%v", h.X)
	}
	if h.WingAngle <= 0 || h.WingAngle >= 2*math.Pi {
		t.Errorf("wing angle out of range: %v", h.WingAngle)
	}
	for range 1000 {
		h.Advance(0)
		if math.Abs(h.BobOffset()) > h.BobAmount {
			t.Fatalf("bob %v exceeds amount %v", h.BobOffset(), h.BobAmount)
		}
	}
}

func TestHazardHitbox(t *testing.T) {
	cfg := config.DefaultSheepConfig().Hazards
	h := NewHazard(testRNG(), 100, 200, cfg)

	hb := h.BoundingBox()
	bob := h.BobOffset()
	want := core.NewRect(105, 200+bob+3, 22, 17)
	if hb != want {
		t.Errorf("hitbox = %+v, expected %+v", hb, want)
	}
}

func TestCheckCollision(t *testing.T) {
	p := newTestPlayer()
	hb := p.Hitbox()
	cfg := config.DefaultSheepConfig().Obstacles

	// Obstacle hitbox starts 5 units right of its X.
	touching := NewObstacle(normalTier(), hb.Right()-5, 350, cfg)
	if CheckCollision(p, touching) {
		t.Error("boxes sharing an edge must not collide")
	}

	overlapping := NewObstacle(normalTier(), hb.Right()-6, 350, cfg)
	if !CheckCollision(p, overlapping) {
		t.Error("overlapping boxes must collide")
	}

	p.Jump()
	for range 15 {
		p.Advance()
	}
	if CheckCollision(p, overlapping) {
		t.Error("a player high above the hurdle must not collide")
	}
}

func TestFirstCollisionOrder(t *testing.T) {
	p := newTestPlayer()
	cfg := config.DefaultSheepConfig()
	o := NewObstacle(normalTier(), p.X, cfg.Field.GroundY, cfg.Obstacles)
	h := NewHazard(testRNG(), p.X, p.Y, cfg.Hazards)

	hit, ok := FirstCollision(p, []*Obstacle{o}, []*Hazard{h})
	if !ok || hit != Collidable(o) {
		t.Errorf("obstacles should be checked first, got %v", hit)
	}

	hit, ok = FirstCollision(p, nil, []*Hazard{h})
	if !ok || hit != Collidable(h) {
		t.Errorf("hazard collision missed, got %v", hit)
	}

	if _, ok := FirstCollision(p, nil, nil); ok {
		t.Error("empty field should not collide")
	}
}
