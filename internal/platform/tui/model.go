package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
	"github.com/vovakirdan/sheepjump/internal/sheep"
	"github.com/vovakirdan/sheepjump/internal/storage"
)

// RunRecorder persists finished rounds.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
	HighScore(difficulty string) (int, error)
}

// Options configures a Model.
type Options struct {
	Store         RunRecorder // Optional; runs are not saved when nil
	Sound         SoundSink   // Optional; silent when nil
	SoundOn       bool
	Logger        *log.Logger
	Difficulty    string
	Player        string
	ScreenshotDir string // Defaults to ~/.sheepjump/screenshots
}

// Model is the Bubble Tea model driving one game.
type Model struct {
	game   *sheep.Game
	screen *core.Screen
	keys   *KeyMapper
	help   help.Model
	config core.RuntimeConfig
	opts   Options
	logger *log.Logger

	soundOn   bool
	highScore int
	lastScore int
	saved     bool // Whether the current game over has been recorded
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *sheep.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		keys:    NewKeyMapper(),
		help:    help.New(),
		config:  cfg,
		opts:    opts,
		logger:  logger,
		soundOn: opts.SoundOn,
	}

	if opts.Store != nil {
		if hs, err := opts.Store.HighScore(opts.Difficulty); err != nil {
			logger.Warn("failed to load high score", "err", err)
		} else {
			m.highScore = hs
		}
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch {
	case action.Exit:
		m.quitting = true
		return m, tea.Quit
	case action.Screenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case action.ToggleSound:
		m.soundOn = !m.soundOn
		return m, nil
	case action.Command != core.CommandNone:
		m.logger.Debug("command", "cmd", action.Command, "state", m.game.State())
		m.game.HandleCommand(action.Command)
		m.flushEvents()
		m.syncRound()
		if m.game.Terminated() {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events. The field is scaled, so the
// round carries on at any size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Tick(m.config.TickDuration())
	m.flushEvents()
	m.syncRound()
	return m, tickCmd(m.config.TickDuration())
}

// flushEvents forwards pending sound events to the sink.
func (m *Model) flushEvents() {
	events := m.game.DrainEvents()
	if !m.soundOn || m.opts.Sound == nil {
		return
	}
	for _, e := range events {
		m.opts.Sound.Play(e.Sound)
	}
}

// syncRound records a finished round once and rolls the high score
// forward when a new round begins.
func (m *Model) syncRound() {
	if m.game.State() != sheep.StateGameOver {
		if m.saved {
			m.highScore = max(m.highScore, m.lastScore)
			m.saved = false
		}
		return
	}
	if m.saved {
		return
	}
	m.saved = true

	snap := m.game.Snapshot()
	m.lastScore = snap.Score
	if m.opts.Store == nil || snap.Score <= 0 {
		return
	}

	rec := storage.RunRecord{
		Player:           m.opts.Player,
		Difficulty:       m.opts.Difficulty,
		Score:            snap.Score,
		EventScore:       snap.EventScore,
		TimeScore:        snap.TimeScore,
		Duration:         snap.Elapsed,
		Jumps:            snap.Stats.Jumps,
		ObstaclesCleared: snap.Stats.ObstaclesCleared,
		HazardsCleared:   snap.Stats.HazardsCleared,
	}
	if _, err := m.opts.Store.SaveRun(rec); err != nil {
		m.logger.Error("failed to save run", "err", err)
		return
	}
	m.logger.Info("run saved", "score", rec.Score, "difficulty", rec.Difficulty)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	DrawSnapshot(m.screen, m.game.Snapshot(), m.hud())

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = config.UserPath("screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("sheepjump_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

func (m Model) hud() HUD {
	return HUD{
		HighScore:  m.highScore,
		Difficulty: m.opts.Difficulty,
		Player:     m.opts.Player,
		SoundOn:    m.soundOn,
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.game.Snapshot(), m.hud())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program for a local game.
func Run(game *sheep.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
