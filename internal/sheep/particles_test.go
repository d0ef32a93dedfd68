package sheep

import (
	"testing"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
)

func newTestParticles() *Particles {
	return NewParticles(config.DefaultSheepConfig().Particles, testRNG())
}

func TestParticleAlphaFadesToZero(t *testing.T) {
	p := newTestParticles()
	p.EmitBurst(100, 100, core.ColorGold, 1)

	prev := p.Items()[0]
	if prev.Alpha != 255 {
		t.Fatalf("fresh particle alpha = %d, expected 255", prev.Alpha)
	}
	for p.Len() > 0 {
		p.Advance()
		if p.Len() == 0 {
			break
		}
		cur := p.Items()[0]
		if cur.Alpha > prev.Alpha {
			t.Fatalf("alpha increased from %d to %d", prev.Alpha, cur.Alpha)
		}
		if cur.Alpha == 0 {
			t.Fatal("a particle with zero alpha must be removed")
		}
		if cur.Life <= 0 {
			t.Fatal("a particle with no life left must be removed")
		}
		prev = cur
	}
	if prev.Life != 1 {
		t.Errorf("particle should survive until its last tick, last life=%d", prev.Life)
	}
}

func TestParticleLifetime(t *testing.T) {
	p := newTestParticles()
	p.EmitBurst(0, 0, core.ColorDefault, 3)

	for i := 0; i < 29; i++ {
		p.Advance()
	}
	if p.Len() != 3 {
		t.Errorf("particles should live 30 ticks, %d left after 29", p.Len())
	}
	p.Advance()
	if p.Len() != 0 {
		t.Errorf("particles should be gone after 30 ticks, %d left", p.Len())
	}
}

func TestParticleBurstCounts(t *testing.T) {
	p := newTestParticles()

	p.EmitBurst(0, 0, core.ColorDefault, 0)
	if p.Len() != 5 {
		t.Errorf("default burst = %d, expected 5", p.Len())
	}

	p.Clear()
	p.EmitBurst(0, 0, core.ColorGold, 15)
	for _, pt := range p.Items() {
		if pt.Color != core.ColorGold {
			t.Fatalf("override color lost: %v", pt.Color)
		}
	}
	if p.Len() != 15 {
		t.Errorf("burst = %d, expected 15", p.Len())
	}

	p.Clear()
	p.EmitLand(0, 0)
	if p.Len() != 10 {
		t.Errorf("landing burst = %d, expected 10", p.Len())
	}
}

func TestParticleDefaultColorsAreDust(t *testing.T) {
	p := newTestParticles()
	p.EmitBurst(0, 0, core.ColorDefault, 50)

	for _, pt := range p.Items() {
		found := false
		for _, c := range core.DustColors {
			if pt.Color == c {
				found = true
			}
		}
		if !found {
			t.Fatalf("unexpected particle color %v", pt.Color)
		}
	}
}

func TestParticleKinematics(t *testing.T) {
	cfg := config.DefaultSheepConfig().Particles
	cfg.RunChance = 1
	p := NewParticles(cfg, testRNG())

	p.EmitRun(50, 50)
	if p.Len() != 1 {
		t.Fatalf("run chance 1 should always emit, got %d", p.Len())
	}
	before := p.Items()[0]
	if before.VX < -0.1 || before.VX > 0.1 || before.VY < -0.15 || before.VY > 0 {
		t.Errorf("run drift out of range: vx=%v vy=%v", before.VX, before.VY)
	}

	p.Advance()
	after := p.Items()[0]
	wantVY := before.VY + cfg.Gravity
	if after.VY != wantVY {
		t.Errorf("vy = %v, expected %v", after.VY, wantVY)
	}
	if after.X != before.X+before.VX || after.Y != before.Y+wantVY {
		t.Errorf("position = (%v, %v), expected (%v, %v)", after.X, after.Y, before.X+before.VX, before.Y+wantVY)
	}

	cfg.RunChance = 0
	q := NewParticles(cfg, testRNG())
	for range 100 {
		q.EmitRun(0, 0)
	}
	if q.Len() != 0 {
		t.Error("run chance 0 should never emit")
	}
}
