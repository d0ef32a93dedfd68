// Package sheep implements the sheep runner simulation: a sheep jumps
// hurdles and dodges eagles on an endlessly scrolling field.
//
// The package is pure. It never blocks, draws or plays sound; callers
// feed it commands and fixed time steps, then read Snapshot and DrainEvents.
package sheep

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
)

// groundPeriod is the length of the repeating ground pattern.
const groundPeriod = 20

// State is the game's top-level mode.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for state changes.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game owns one sheep runner session.
type Game struct {
	cfg      config.SheepConfig
	runtime  core.RuntimeConfig
	logger   *log.Logger
	rng      *rand.Rand
	schedule config.SpeedSchedule

	state      State
	terminated bool

	player    *Player
	obstacles Registry[*Obstacle]
	hazards   Registry[*Hazard]
	clouds    Registry[*Cloud]
	particles *Particles
	spawner   *Spawner
	scorer    *Scorer

	speed        float64
	groundOffset float64
	stats        Stats
	popup        Popup
	events       []Event
}

// New creates a game sitting in the menu.
func New(cfg config.SheepConfig, runtime core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		runtime:  runtime,
		logger:   log.New(io.Discard),
		rng:      rand.New(rand.NewSource(runtime.Seed)),
		schedule: config.NewSpeedSchedule(cfg.Speed),
		state:    StateMenu,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.player = NewPlayer(cfg.Field, cfg.Player, cfg.Physics)
	g.particles = NewParticles(cfg.Particles, g.rng)
	g.spawner = NewSpawner(&g.cfg, g.rng)
	g.scorer = NewScorer(cfg.Scoring.MilestoneEvery)
	g.reset()
	return g
}

// State returns the current mode.
func (g *Game) State() State {
	return g.state
}

// Terminated reports whether the player asked to quit from the menu.
func (g *Game) Terminated() bool {
	return g.terminated
}

// Score returns the current total score.
func (g *Game) Score() int {
	return g.scorer.Total()
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.SheepConfig {
	return g.cfg
}

// HandleCommand applies a logical command. Commands that mean nothing
// in the current state are ignored.
func (g *Game) HandleCommand(cmd core.Command) {
	switch g.state {
	case StateMenu:
		switch cmd {
		case core.CommandStart, core.CommandJumpOrConfirm:
			g.startRound()
		case core.CommandQuitOrReset:
			g.terminated = true
			g.emit(SoundClick)
			g.logger.Debug("quit requested")
		}
	case StatePlaying:
		switch cmd {
		case core.CommandJumpOrConfirm:
			g.jump()
		case core.CommandPauseToggle:
			g.setState(StatePaused)
			g.emit(SoundClick)
		case core.CommandQuitOrReset:
			g.toMenu()
		}
	case StatePaused:
		switch cmd {
		case core.CommandPauseToggle:
			g.setState(StatePlaying)
			g.emit(SoundClick)
		case core.CommandQuitOrReset:
			g.toMenu()
		}
	case StateGameOver:
		switch cmd {
		case core.CommandStart, core.CommandJumpOrConfirm:
			g.startRound()
		case core.CommandQuitOrReset:
			g.toMenu()
		}
	}
}

// Tick advances the simulation by one fixed step. It does nothing unless playing.
func (g *Game) Tick(dt time.Duration) {
	if g.state != StatePlaying {
		return
	}
	g.stats.Ticks++

	g.speed = g.schedule.Next(g.speed)
	g.groundOffset = math.Mod(g.groundOffset+g.speed, groundPeriod)

	if g.player.Advance() {
		fx, fy := g.player.Feet()
		g.particles.EmitLand(fx, fy)
		g.emit(SoundLand)
	}
	if g.player.Grounded {
		fx, _ := g.player.Feet()
		g.particles.EmitRun(fx, g.cfg.Field.GroundY-5)
	}

	g.clouds.Advance(g.speed)
	g.spawner.SpawnCloud(&g.clouds)

	for _, o := range g.obstacles.Advance(g.speed) {
		g.stats.ObstaclesCleared++
		g.creditAvoid(o)
	}
	for _, h := range g.hazards.Advance(g.speed) {
		g.stats.HazardsCleared++
		g.creditAvoid(h)
	}

	g.spawner.SpawnObstacle(&g.obstacles)
	g.spawner.SpawnHazard(&g.hazards, g.scorer.Total())

	if hit, ok := FirstCollision(g.player, g.obstacles.Items(), g.hazards.Items()); ok {
		g.gameOver(hit, dt)
		return
	}

	g.scorer.Tick(dt)
	g.particles.Advance()
	if g.popup.TicksLeft > 0 {
		g.popup.TicksLeft--
	}
}

func (g *Game) jump() {
	if !g.player.Jump() {
		return
	}
	g.stats.Jumps++
	points := g.cfg.Scoring.JumpPoints
	fx, fy := g.player.Feet()
	credit := g.scorer.CreditJump(points)

	if g.player.Charges == 0 {
		g.stats.DoubleJumps++
		g.emit(SoundDoubleJump)
		g.particles.EmitBurst(fx, fy, core.ColorGold, g.cfg.Particles.DoubleJumpCount)
		g.showPopup(fmt.Sprintf("+%d DOUBLE!", points), fx, g.player.Y-30)
	} else {
		g.emit(SoundJump)
		g.particles.EmitBurst(fx, fy, core.ColorDefault, 0)
		g.showPopup(fmt.Sprintf("+%d", points), fx, g.player.Y-20)
	}
	g.announce(credit)
}

func (g *Game) creditAvoid(c Collidable) {
	credit := g.scorer.CreditAvoid(c.Points())
	g.showPopup(fmt.Sprintf("+%d", c.Points()), g.cfg.Field.Width/2, g.cfg.Field.GroundY-100)
	g.announce(credit)
}

// announce emits the notifications for a credit. A milestone popup
// replaces the ordinary one.
func (g *Game) announce(c Credit) {
	g.emit(SoundScore)
	if c.Milestone {
		g.emit(SoundMilestone)
		g.showPopup(fmt.Sprintf("SCORE: %d", c.New), g.cfg.Field.Width/2, g.cfg.Field.Height/3)
		g.logger.Debug("milestone", "score", c.New)
	}
}

func (g *Game) showPopup(text string, x, y float64) {
	g.popup = Popup{Text: text, X: x, Y: y, TicksLeft: g.cfg.Scoring.PopupTicks}
}

func (g *Game) startRound() {
	g.reset()
	g.spawner.SpawnObstacle(&g.obstacles)
	g.setState(StatePlaying)
	g.emit(SoundClick)
}

func (g *Game) toMenu() {
	g.reset()
	g.setState(StateMenu)
	g.emit(SoundClick)
}

func (g *Game) gameOver(hit Collidable, dt time.Duration) {
	g.speed = 0
	g.scorer.Tick(dt)
	g.setState(StateGameOver)
	g.emit(SoundGameOver)

	box := hit.BoundingBox()
	g.logger.Debug("round over",
		"score", g.scorer.Total(),
		"elapsed", g.scorer.Elapsed(),
		"jumps", g.stats.Jumps,
		"hit_x", box.X,
		"hit_y", box.Y,
	)
}

// reset discards the round and restores the spawn state.
func (g *Game) reset() {
	g.player.Reset()
	g.obstacles.Clear()
	g.hazards.Clear()
	g.clouds.Clear()
	g.particles.Clear()
	g.scorer.Reset()
	g.speed = g.schedule.Initial()
	g.groundOffset = 0
	g.stats = Stats{}
	g.popup = Popup{}
	g.spawner.SeedClouds(&g.clouds)
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	g.logger.Debug("state change", "from", g.state, "to", s)
	g.state = s
}

func (g *Game) hazardWarning() bool {
	score := g.scorer.Total()
	unlock := g.cfg.Hazards.UnlockScore
	return score >= unlock-g.cfg.Hazards.WarningMargin && score < unlock
}
