package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
	"github.com/vovakirdan/sheepjump/internal/platform/tui"
	"github.com/vovakirdan/sheepjump/internal/sheep"
	"github.com/vovakirdan/sheepjump/internal/storage"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W   - Start, jump (press again in the air to double jump)
  Enter        - Start
  P/Esc        - Pause
  Q            - Back to menu, or quit from the menu
  M            - Toggle the terminal bell
  Ctrl+S       - Save a screenshot to ~/.sheepjump/screenshots
  Ctrl+C       - Exit

Difficulty options:
  easy   - Slower start, gentler acceleration, eagles arrive later
  normal - Default settings
  hard   - Faster start and acceleration, eagles arrive early
  fixed  - No acceleration

Examples:
  sheepjump play
  sheepjump play --difficulty hard
  sheepjump play --config ./my-sheep.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Ring the terminal bell on notable events")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, preset, src, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// The terminal belongs to the game, so logs go to a file or nowhere.
	logPath := flagLogFile
	if logPath == "" {
		logPath = config.UserPath("sheepjump.log")
	}
	logger, closeLog, err := newLogger("sheepjump", logPath, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Debug("config loaded", "source", src, "difficulty", preset, "seed", cfg.Seed)

	game := sheep.New(gameCfg, cfg, sheep.WithLogger(logger))

	opts := tui.Options{
		Sound:      tui.NewBellSink(os.Stderr),
		SoundOn:    flagSound,
		Logger:     logger,
		Difficulty: string(preset),
		Player:     playerName(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		opts.Store = store
	}

	runErr := tui.Run(game, cfg, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
