// sheepjump is an endless runner for the terminal: a sheep jumps hurdles
// and dodges eagles while the field speeds up.
//
// Usage:
//
//	sheepjump play           - Play in this terminal
//	sheepjump serve          - Start SSH server for remote play
//	sheepjump scores         - Show high scores
//	sheepjump config         - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.sheepjump/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--debug               - Log state changes and milestones
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sheepjump/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sheepjump",
	Short: "Sheep Jump - an endless runner in your terminal",
	Long: `Sheep Jump is a side-scrolling runner. Jump the hurdles, dodge the
eagles, and keep going as the field speeds up. The sheep can jump
twice before touching the ground again.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective game configuration

Examples:
  sheepjump play
  sheepjump play --difficulty hard
  sheepjump serve --ssh :2222
  sheepjump scores --difficulty easy`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sheepjump/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play defaults to ~/.sheepjump/sheepjump.log)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config and applies the difficulty preset.
// It also reports which file the config came from.
func loadGameConfig() (config.SheepConfig, config.DifficultyPreset, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SheepConfig{}, "", "", err
	}
	cfg, src, err := config.LoadSheepWithSource(flagConfig)
	if err != nil {
		return config.SheepConfig{}, "", "", err
	}
	config.ApplySheepPreset(&cfg, preset)
	return cfg, preset, src, nil
}

// newLogger builds a logger writing to path, or to fallback when path is
// empty. The returned func closes the log file.
func newLogger(prefix, path string, fallback io.Writer) (*log.Logger, func(), error) {
	out, closer := fallback, func() {}
	if path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// playerName returns the local user name recorded with saved runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
