package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/platform/tui"
	"github.com/vovakirdan/sheepjump/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs. Without --difficulty every difficulty is listed.

Examples:
  sheepjump scores
  sheepjump scores --difficulty hard --limit 20
  sheepjump scores --interactive
  sheepjump scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded runs for the selected difficulty")
}

func runScores(_ *cobra.Command, _ []string) {
	difficulty, err := scoresDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s\n", labelDifficulty(difficulty))

	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, difficulty, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}

	default:
		if err := printScores(os.Stdout, store, difficulty, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}
}

// scoresDifficulty validates the difficulty filter. Unlike play, empty means all.
func scoresDifficulty(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	p, err := config.ParsePreset(s)
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func labelDifficulty(difficulty string) string {
	if difficulty == "" {
		return "all difficulties"
	}
	return difficulty
}

// printScores writes the top runs and a short summary.
func printScores(w io.Writer, store *storage.Store, difficulty string, limit int) error {
	runs, err := store.TopRuns(difficulty, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", labelDifficulty(difficulty))
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'sheepjump play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-7s  %-6s  %-5s  %-7s  %s\n", "Rank", "Player", "Score", "Time", "Jumps", "Mode", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-7s  %-6s  %-5s  %-7s  %s\n", "----", "------", "-----", "----", "-----", "----", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-12s  %-7d  %-6s  %-5d  %-7s  %s\n",
			i+1, player, r.Score, fmt.Sprintf("%.0fs", r.Duration.Seconds()), r.Jumps, r.Difficulty,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(difficulty)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	return nil
}
