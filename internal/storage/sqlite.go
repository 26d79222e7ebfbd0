// Package storage provides SQLite-based persistence for streak history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for streak persistence.
type Store struct {
	db *sql.DB
}

// StreakEntry represents a single recorded streak.
type StreakEntry struct {
	ID        int64
	Streak    int
	CreatedAt time.Time
}

// StreakStats contains aggregated statistics over all recorded streaks.
type StreakStats struct {
	Count      int
	Best       int
	AvgStreak  float64
	TotalWins  int64
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
		CREATE TABLE IF NOT EXISTS streaks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			streak INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_streaks_top ON streaks(streak DESC);
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

// SaveStreak records a completed streak.
// Returns the ID of the inserted record.
func (s *Store) SaveStreak(streak int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO streaks (streak) VALUES (?)",
		streak,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save streak: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopStreaks retrieves the top N streaks, ordered descending.
func (s *Store) TopStreaks(limit int) ([]StreakEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, streak, created_at
		 FROM streaks
		 ORDER BY streak DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query streaks: %w", err)
	}
	defer rows.Close()

	var entries []StreakEntry
	for rows.Next() {
		var e StreakEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Streak, &createdAt); err != nil {
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

// BestStreak returns the highest recorded streak.
// Returns 0 if no streaks exist.
func (s *Store) BestStreak() (int, error) {
	var streak sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(streak) FROM streaks").Scan(&streak)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best streak: %w", err)
	}

	if !streak.Valid {
		return 0, nil
	}

	return int(streak.Int64), nil
}

// Stats retrieves aggregated statistics over all recorded streaks.
func (s *Store) Stats() (*StreakStats, error) {
	stats := &StreakStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(streak), 0), COALESCE(AVG(streak), 0), COALESCE(SUM(streak), 0)
		 FROM streaks`,
	).Scan(&stats.Count, &stats.Best, &stats.AvgStreak, &stats.TotalWins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM streaks ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearStreaks deletes all recorded streaks.
func (s *Store) ClearStreaks() error {
	_, err := s.db.Exec("DELETE FROM streaks")
	if err != nil {
		return fmt.Errorf("storage: cannot clear streaks: %w", err)
	}
	return nil
}

// parseTime handles the driver returning datetimes as time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
