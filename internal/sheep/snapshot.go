package sheep

import (
	"time"

	"github.com/vovakirdan/sheepjump/internal/config"
)

// Stats counts what happened during the current round.
type Stats struct {
	Ticks            int
	Jumps            int
	DoubleJumps      int
	ObstaclesCleared int
	HazardsCleared   int
}

// Popup is the most recent scoring notice.
type Popup struct {
	Text      string
	X, Y      float64
	TicksLeft int
}

// Active reports whether the popup should still be shown.
func (p Popup) Active() bool {
	return p.TicksLeft > 0 && p.Text != ""
}

// Snapshot is a read-only copy of everything a renderer needs.
// It shares no memory with the game.
type Snapshot struct {
	State State
	Field config.FieldConfig

	Player    Player
	Obstacles []Obstacle
	Hazards   []Hazard
	Clouds    []Cloud
	Particles []Particle

	Score      int
	EventScore int
	TimeScore  int
	Elapsed    time.Duration
	Speed      float64
	SpeedLevel float64 // 0 at the initial speed, 1 at the cap

	Stats         Stats
	Popup         Popup
	HazardWarning bool // Eagles are about to unlock
	GroundOffset  float64
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:         g.state,
		Field:         g.cfg.Field,
		Player:        *g.player,
		Obstacles:     make([]Obstacle, 0, g.obstacles.Len()),
		Hazards:       make([]Hazard, 0, g.hazards.Len()),
		Clouds:        make([]Cloud, 0, g.clouds.Len()),
		Particles:     g.particles.Items(),
		Score:         g.scorer.Total(),
		EventScore:    g.scorer.EventScore(),
		TimeScore:     g.scorer.TimeScore(),
		Elapsed:       g.scorer.Elapsed(),
		Speed:         g.speed,
		SpeedLevel:    g.schedule.Level(g.speed),
		Stats:         g.stats,
		Popup:         g.popup,
		HazardWarning: g.hazardWarning(),
		GroundOffset:  g.groundOffset,
	}
	for _, o := range g.obstacles.Items() {
		s.Obstacles = append(s.Obstacles, *o)
	}
	for _, h := range g.hazards.Items() {
		s.Hazards = append(s.Hazards, *h)
	}
	for _, c := range g.clouds.Items() {
		s.Clouds = append(s.Clouds, *c)
	}
	return s
}
