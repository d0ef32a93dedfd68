package sheep

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
)

const step = time.Second / 60

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

func newTestGame(mutate ...func(*config.SheepConfig)) *Game {
	cfg := config.DefaultSheepConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	return New(cfg, testRuntime)
}

// singleTier restricts spawning to one predictable hurdle.
func singleTier(cfg *config.SheepConfig) {
	cfg.Obstacles.Tiers = []config.TierConfig{
		{Name: "normal", Height: 40, Width: 30, Points: 10, Weight: 1},
	}
}

// constantSpeed disables acceleration.
func constantSpeed(cfg *config.SheepConfig) {
	cfg.Speed.Increment = 0
}

// ghost moves the player far off the field so nothing can hit it.
func ghost(g *Game) {
	g.player.X = -10000
	g.player.updateHitbox()
}

func sounds(events []Event) []Sound {
	out := make([]Sound, 0, len(events))
	for _, e := range events {
		out = append(out, e.Sound)
	}
	return out
}

func countSound(events []Event, s Sound) int {
	n := 0
	for _, e := range events {
		if e.Sound == s {
			n++
		}
	}
	return n
}

func hasSound(events []Event, s Sound) bool {
	return slices.ContainsFunc(events, func(e Event) bool { return e.Sound == s })
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(7))
}
