// Package storage provides SQLite-based persistence for round records.
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

// historyLimit caps how many records each mode keeps. Older rows are
// evicted first.
const historyLimit = 200

// Store manages the SQLite database connection for record persistence.
type Store struct {
	db *sql.DB
}

// ModeRecord is one finished classic or tri round.
type ModeRecord struct {
	ID           int64
	Mode         string // "classic" or "tri"
	Level        int
	TimeSecs     int
	PrecisionPct int
	Rank         string // "S", "A", "B", "C"
	CreatedAt    time.Time
}

// EndlessRecord is one finished endless run: how far it got and how
// long it took.
type EndlessRecord struct {
	ID              int64
	Round           int
	SegmentLevel    int
	SegmentSurvival int
	TimeSecs        int
	CreatedAt       time.Time
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
		CREATE TABLE IF NOT EXISTS mode_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			level INTEGER NOT NULL,
			time_secs INTEGER NOT NULL,
			precision_pct INTEGER NOT NULL,
			rank TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_mode_records_mode ON mode_records(mode);

		CREATE TABLE IF NOT EXISTS endless_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round INTEGER NOT NULL,
			segment_level INTEGER NOT NULL,
			segment_survival INTEGER NOT NULL,
			time_secs INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_endless_records_round ON endless_records(round DESC);
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

// SaveModeRecord records a finished classic or tri round and evicts
// the oldest rows of that mode beyond the history limit.
// Returns the ID of the inserted record.
func (s *Store) SaveModeRecord(rec ModeRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO mode_records (mode, level, time_secs, precision_pct, rank)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Mode, rec.Level, rec.TimeSecs, rec.PrecisionPct, rec.Rank,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = s.db.Exec(
		`DELETE FROM mode_records
		 WHERE mode = ? AND id NOT IN (
		 	SELECT id FROM mode_records WHERE mode = ? ORDER BY id DESC LIMIT ?
		 )`,
		rec.Mode, rec.Mode, historyLimit,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot trim history: %w", err)
	}

	return id, nil
}

// rankOrder sorts rank letters from best to worst in SQL.
const rankOrder = `CASE rank WHEN 'S' THEN 3 WHEN 'A' THEN 2 WHEN 'B' THEN 1 ELSE 0 END`

// TopModeRecords retrieves the best N records for the given mode.
// Higher levels beat lower ones, then better rank, better precision,
// faster time.
func (s *Store) TopModeRecords(mode string, limit int) ([]ModeRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, level, time_secs, precision_pct, rank, created_at
		 FROM mode_records
		 WHERE mode = ?
		 ORDER BY level DESC, `+rankOrder+` DESC, precision_pct DESC, time_secs ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	return scanModeRecords(rows)
}

// RecentModeRecords retrieves the latest N records for the given mode,
// newest first.
func (s *Store) RecentModeRecords(mode string, limit int) ([]ModeRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, level, time_secs, precision_pct, rank, created_at
		 FROM mode_records
		 WHERE mode = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	return scanModeRecords(rows)
}

func scanModeRecords(rows *sql.Rows) ([]ModeRecord, error) {
	var entries []ModeRecord
	for rows.Next() {
		var e ModeRecord
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Level, &e.TimeSecs, &e.PrecisionPct, &e.Rank, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// SaveEndlessRecord records a finished endless run and evicts the
// oldest rows beyond the history limit.
// Returns the ID of the inserted record.
func (s *Store) SaveEndlessRecord(rec EndlessRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO endless_records (round, segment_level, segment_survival, time_secs)
		 VALUES (?, ?, ?, ?)`,
		rec.Round, rec.SegmentLevel, rec.SegmentSurvival, rec.TimeSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = s.db.Exec(
		`DELETE FROM endless_records
		 WHERE id NOT IN (
		 	SELECT id FROM endless_records ORDER BY id DESC LIMIT ?
		 )`,
		historyLimit,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot trim history: %w", err)
	}

	return id, nil
}

// TopEndlessRecords retrieves the best N endless runs: deepest round
// first, faster time breaking ties.
func (s *Store) TopEndlessRecords(limit int) ([]EndlessRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round, segment_level, segment_survival, time_secs, created_at
		 FROM endless_records
		 ORDER BY round DESC, time_secs ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	return scanEndlessRecords(rows)
}

// RecentEndlessRecords retrieves the latest N endless runs, newest
// first.
func (s *Store) RecentEndlessRecords(limit int) ([]EndlessRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round, segment_level, segment_survival, time_secs, created_at
		 FROM endless_records
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	return scanEndlessRecords(rows)
}

func scanEndlessRecords(rows *sql.Rows) ([]EndlessRecord, error) {
	var entries []EndlessRecord
	for rows.Next() {
		var e EndlessRecord
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Round, &e.SegmentLevel, &e.SegmentSurvival, &e.TimeSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseCreatedAt handles both time.Time and string datetime columns.
func parseCreatedAt(v any) time.Time {
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

// BestEndlessRound returns the deepest round reached across all
// endless runs. Returns 0 if no runs exist.
func (s *Store) BestEndlessRound() (int, error) {
	var round sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(round) FROM endless_records").Scan(&round)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best round: %w", err)
	}
	if !round.Valid {
		return 0, nil
	}
	return int(round.Int64), nil
}

// ClearModeRecords deletes all records for the given mode.
func (s *Store) ClearModeRecords(mode string) error {
	_, err := s.db.Exec("DELETE FROM mode_records WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}
	return nil
}

// ClearEndlessRecords deletes all endless records.
func (s *Store) ClearEndlessRecords() error {
	_, err := s.db.Exec("DELETE FROM endless_records")
	if err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}
	return nil
}
