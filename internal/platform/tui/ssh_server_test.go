package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sheepjump/internal/config"
)

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	srv, err := NewSSHServer(cfg, config.DefaultSheepConfig(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if len(srv.Sessions()) != 0 {
		t.Error("new server should have no sessions")
	}
	if srv.store == nil {
		t.Error("scores database should be open")
	}
	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("host key directory not created: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
	if srv.store != nil {
		t.Error("Shutdown() should close the store")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.TickRate != 60 || cfg.Difficulty != "normal" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
