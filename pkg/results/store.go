// Package results persists benchmark timing rows to SQLite.
package results

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Row is one backend/sample timing measurement.
type Row struct {
	RunID      string
	Backend    string
	Sample     string
	Elapsed    time.Duration
	Value      float64
	RecordedAt time.Time
}

// Store is a small append-only table of Rows.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open creates or attaches to the SQLite database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("results: opening database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT NOT NULL,
		backend TEXT NOT NULL,
		sample TEXT NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		value REAL NOT NULL,
		recorded_at TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("results: creating table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one timing row.
func (s *Store) Record(r Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, backend, sample, elapsed_ns, value, recorded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Backend, r.Sample, r.Elapsed.Nanoseconds(), r.Value, r.RecordedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("results: recording row: %w", err)
	}
	return nil
}

// ForRun returns every row recorded under runID, ordered by insertion.
func (s *Store) ForRun(runID string) ([]Row, error) {
	rows, err := s.db.Query(
		`SELECT run_id, backend, sample, elapsed_ns, value, recorded_at FROM runs WHERE run_id = ? ORDER BY rowid`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("results: querying run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var elapsedNs int64
		var recordedAt string
		if err := rows.Scan(&r.RunID, &r.Backend, &r.Sample, &elapsedNs, &r.Value, &recordedAt); err != nil {
			return nil, fmt.Errorf("results: scanning row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedNs)
		r.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("results: parsing recorded_at: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
