package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
	"github.com/vovakirdan/sheepjump/internal/sheep"
	"github.com/vovakirdan/sheepjump/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.sheepjump/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Difficulty is recorded with every saved run.
	Difficulty string

	// SoundOn starts sessions with the terminal bell enabled.
	SoundOn bool

	// MaxSessions caps concurrent players. Zero means unlimited.
	MaxSessions int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.sheepjump/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Difficulty:  string(config.DifficultyNormal),
	}
}

// SSHServer wraps a Wish SSH server. Every session plays its own game.
type SSHServer struct {
	config   SSHServerConfig
	gameCfg  config.SheepConfig
	server   *ssh.Server
	store    *storage.Store
	sessions *SessionRegistry
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server serving games built from gameCfg.
func NewSSHServer(cfg SSHServerConfig, gameCfg config.SheepConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "sheepjump-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:   cfg,
		gameCfg:  gameCfg,
		store:    store,
		sessions: NewSessionRegistry(cfg.MaxSessions),
		logger:   logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = config.UserPath("host_key")
		if hostKeyPath == "" {
			return nil, errors.New("cannot resolve home directory for host key")
		}
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates an independent game and model for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()

	runtime := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	sessionLog := s.logger.With("user", sshSession.User())
	game := sheep.New(s.gameCfg, runtime, sheep.WithLogger(sessionLog))

	opts := Options{
		Sound:      NewBellSink(sshSession),
		SoundOn:    s.config.SoundOn,
		Logger:     sessionLog,
		Difficulty: s.config.Difficulty,
		Player:     sshSession.User(),
	}
	if s.store != nil {
		opts.Store = s.store
	}

	return NewModel(game, runtime, opts), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware registers and logs SSH sessions, turning players
// away when the server is full.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		user, remote := sshSession.User(), sshSession.RemoteAddr().String()
		start := time.Now()

		id, ok := s.sessions.Register(user, remote, start)
		if !ok {
			s.logger.Warn("session refused, server full", "user", user, "remote", remote)
			wish.Fatalln(sshSession, "Sheep Jump is full, try again later.")
			return
		}
		defer s.sessions.Unregister(id)

		s.logger.Info("session started",
			"id", id,
			"user", user,
			"remote", remote,
			"active", s.sessions.Count(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"id", id,
			"user", user,
			"remote", remote,
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// Sessions returns the players currently connected.
func (s *SSHServer) Sessions() []SessionInfo {
	return s.sessions.List()
}

// ListenAndServe starts the SSH server and blocks until ctx is cancelled,
// an interrupt arrives, or the listener fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("server error", "error", err)
			s.closeStore()
			return err
		}
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
