// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is the summary of one finished round.
type RunRecord struct {
	ID               int64
	Player           string
	Difficulty       string
	Score            int
	EventScore       int
	TimeScore        int
	Duration         time.Duration
	Jumps            int
	ObstaclesCleared int
	HazardsCleared   int
	CreatedAt        time.Time
}

// RunStats contains aggregated statistics for a difficulty.
type RunStats struct {
	Difficulty string
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			event_score INTEGER NOT NULL DEFAULT 0,
			time_score INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			jumps INTEGER NOT NULL DEFAULT 0,
			obstacles_cleared INTEGER NOT NULL DEFAULT 0,
			hazards_cleared INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (player, difficulty, score, event_score, time_score, duration_ms, jumps, obstacles_cleared, hazards_cleared)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player,
		r.Difficulty,
		r.Score,
		r.EventScore,
		r.TimeScore,
		r.Duration.Milliseconds(),
		r.Jumps,
		r.ObstaclesCleared,
		r.HazardsCleared,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best runs ordered by score descending; earlier
// runs win ties. An empty difficulty matches every difficulty.
func (s *Store) TopRuns(difficulty string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, difficulty, score, event_score, time_score, duration_ms,
		        jumps, obstacles_cleared, hazards_cleared, created_at
		 FROM runs
		 WHERE ? = '' OR difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Player,
			&r.Difficulty,
			&r.Score,
			&r.EventScore,
			&r.TimeScore,
			&durationMs,
			&r.Jumps,
			&r.ObstaclesCleared,
			&r.HazardsCleared,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest score for the difficulty.
// Returns 0 if no runs exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE ? = '' OR difficulty = ?",
		difficulty, difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes runs for the difficulty, or every run when it is empty.
func (s *Store) ClearRuns(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR difficulty = ?", difficulty, difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a difficulty.
func (s *Store) Stats(difficulty string) (*RunStats, error) {
	stats := &RunStats{Difficulty: difficulty}

	var totalMs int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(duration_ms), 0)
		 FROM runs WHERE ? = '' OR difficulty = ?`,
		difficulty, difficulty,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &totalMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.TotalTime = time.Duration(totalMs) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE ? = '' OR difficulty = ? ORDER BY id DESC LIMIT 1`,
		difficulty, difficulty,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
