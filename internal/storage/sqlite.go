// Package storage provides SQLite-based persistence for puzzle results.
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

	"github.com/vovakirdan/tui-slide/internal/games/slide"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ClearEntry is one cleared level.
type ClearEntry struct {
	ID        int64
	RunID     string
	Level     int
	Variant   string
	Dimension int
	Moves     int
	Seconds   float64
	CreatedAt time.Time
}

// RunEntry is one finished run.
type RunEntry struct {
	ID        int64
	RunID     string
	Cleared   int
	Level     int
	Dimension int
	Reason    string // "timeout", "restart", "quit"
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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
		CREATE TABLE IF NOT EXISTS clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			variant TEXT NOT NULL,
			dimension INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			seconds REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_clears_run_id ON clears(run_id);
		CREATE INDEX IF NOT EXISTS idx_clears_fastest ON clears(dimension, seconds ASC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			cleared INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			dimension INTEGER NOT NULL,
			reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_cleared ON runs(cleared DESC);
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

// SaveClear records a cleared level and returns the ID of the inserted record.
func (s *Store) SaveClear(c ClearEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO clears (run_id, level, variant, dimension, moves, seconds)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.RunID, c.Level, c.Variant, c.Dimension, c.Moves, c.Seconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save clear: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveRun records a finished run. Saving the same run ID twice is an error.
func (s *Store) SaveRun(r RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, cleared, level, dimension, reason)
		 VALUES (?, ?, ?, ?, ?)`,
		r.RunID, r.Cleared, r.Level, r.Dimension, r.Reason,
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

// TopClears returns the fastest clears for a grid dimension, fewest moves
// breaking ties. A dimension of 0 covers every size.
func (s *Store) TopClears(dimension, limit int) ([]ClearEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level, variant, dimension, moves, seconds, created_at
		 FROM clears
		 WHERE ? = 0 OR dimension = ?
		 ORDER BY seconds ASC, moves ASC, id ASC
		 LIMIT ?`,
		dimension, dimension, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	return scanClears(rows)
}

// Dimensions returns every grid dimension that has a clear, smallest first.
func (s *Store) Dimensions() ([]int, error) {
	rows, err := s.db.Query("SELECT DISTINCT dimension FROM clears ORDER BY dimension ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query dimensions: %w", err)
	}
	defer rows.Close()

	var dims []int
	for rows.Next() {
		var d int
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		dims = append(dims, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return dims, nil
}

// RunClears returns the clears of one run in the order they happened.
func (s *Store) RunClears(runID string) ([]ClearEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, level, variant, dimension, moves, seconds, created_at
		 FROM clears
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run clears: %w", err)
	}
	return scanClears(rows)
}

func scanClears(rows *sql.Rows) ([]ClearEntry, error) {
	defer rows.Close()

	var entries []ClearEntry
	for rows.Next() {
		var e ClearEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Level, &e.Variant, &e.Dimension, &e.Moves, &e.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestRuns returns the runs that cleared the most levels, newest first on ties.
func (s *Store) BestRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, cleared, level, dimension, reason, created_at
		 FROM runs
		 ORDER BY cleared DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Cleared, &e.Level, &e.Dimension, &e.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestTime returns the fastest clear time for a dimension.
// ok is false if the dimension has never been cleared.
func (s *Store) BestTime(dimension int) (seconds float64, ok bool, err error) {
	var best sql.NullFloat64
	err = s.db.QueryRow(
		"SELECT MIN(seconds) FROM clears WHERE dimension = ?",
		dimension,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot get best time: %w", err)
	}
	return best.Float64, best.Valid, nil
}

// ClearHistory deletes every clear and run.
func (s *Store) ClearHistory() error {
	_, err := s.db.Exec("DELETE FROM clears; DELETE FROM runs;")
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs         int
	Clears       int
	MostCleared  int
	LargestGrid  int
	AvgClearTime float64
	TotalMoves   int64
	LastPlayed   time.Time
}

// GetStats retrieves aggregated statistics.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(dimension), 0), COALESCE(AVG(seconds), 0), COALESCE(SUM(moves), 0)
		 FROM clears`,
	).Scan(&stats.Clears, &stats.LargestGrid, &stats.AvgClearTime, &stats.TotalMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get clear stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(cleared), 0) FROM runs`,
	).Scan(&stats.Runs, &stats.MostCleared)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles created_at values returned either as time.Time or as
// SQLite's text format.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecordClear implements slide.Recorder.
func (s *Store) RecordClear(c slide.ClearRecord) error {
	_, err := s.SaveClear(ClearEntry{
		RunID:     c.RunID,
		Level:     c.Level,
		Variant:   c.Variant,
		Dimension: c.Dimension,
		Moves:     c.Moves,
		Seconds:   c.Seconds,
	})
	return err
}

// RecordRun implements slide.Recorder.
func (s *Store) RecordRun(r slide.RunRecord) error {
	_, err := s.SaveRun(RunEntry{
		RunID:     r.RunID,
		Cleared:   r.Cleared,
		Level:     r.Level,
		Dimension: r.Dimension,
		Reason:    r.Reason,
	})
	return err
}

var _ slide.Recorder = (*Store)(nil)
