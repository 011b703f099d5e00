package runlog

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id          TEXT PRIMARY KEY,
	polynomial      TEXT NOT NULL,
	status          TEXT NOT NULL,
	attempts        INTEGER NOT NULL DEFAULT 0,
	final_precision INTEGER NOT NULL DEFAULT 0,
	created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_attempts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	attempt    INTEGER NOT NULL,
	precision  INTEGER NOT NULL,
	outcome    TEXT NOT NULL,
	created_at TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS run_roots (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	box          TEXT NOT NULL,
	multiplicity INTEGER NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// #endregion

// #region store-struct

// Store keeps a provenance log of isolation runs in SQLite: one row per
// run, one per precision attempt, and one per certified root.
type Store struct {
	db *sql.DB
}

// #endregion

// #region constructor

// Open opens (or creates) the run-log database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion

// #region records

// Run is one isolation run.
type Run struct {
	RunID          string
	Polynomial     string
	Status         string // "running", "ok", "exhausted"
	Attempts       int
	FinalPrecision uint
	CreatedAt      time.Time
}

// Attempt is one precision attempt within a run.
type Attempt struct {
	Attempt   int
	Precision uint
	Outcome   string
	CreatedAt time.Time
}

// RootRecord is one certified root of a successful run.
type RootRecord struct {
	Box          string
	Multiplicity int
}

// #endregion

// #region writes

// BeginRun inserts a new run in "running" state and returns its ID.
func (s *Store) BeginRun(polynomial string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, polynomial, status, created_at) VALUES (?, ?, 'running', ?)`,
		id, polynomial, now,
	)
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return id, nil
}

// RecordAttempt appends one precision attempt to a run.
func (s *Store) RecordAttempt(runID string, attempt int, precision uint, outcome string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.Exec(
		`INSERT INTO run_attempts (run_id, attempt, precision, outcome, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		runID, attempt, precision, outcome, now,
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// RecordRoot appends one certified root to a run.
func (s *Store) RecordRoot(runID, box string, multiplicity int) error {
	_, err := s.db.Exec(
		`INSERT INTO run_roots (run_id, box, multiplicity) VALUES (?, ?, ?)`,
		runID, box, multiplicity,
	)
	if err != nil {
		return fmt.Errorf("record root: %w", err)
	}
	return nil
}

// FinishRun records the final status of a run.
func (s *Store) FinishRun(runID, status string, attempts int, finalPrecision uint) error {
	_, err := s.db.Exec(
		`UPDATE runs SET status = ?, attempts = ?, final_precision = ? WHERE run_id = ?`,
		status, attempts, finalPrecision, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// #endregion

// #region reads

// ListRuns returns the most recent runs.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT run_id, polynomial, status, attempts, final_precision, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun retrieves a single run by ID.
func (s *Store) GetRun(runID string) (Run, error) {
	row := s.db.QueryRow(
		`SELECT run_id, polynomial, status, attempts, final_precision, created_at
		 FROM runs WHERE run_id = ?`, runID,
	)
	r, err := scanRun(row)
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	return r, nil
}

// Attempts returns the precision attempts of a run in order.
func (s *Store) Attempts(runID string) ([]Attempt, error) {
	rows, err := s.db.Query(
		`SELECT attempt, precision, outcome, created_at
		 FROM run_attempts WHERE run_id = ? ORDER BY attempt`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var createdStr string
		if err := rows.Scan(&a.Attempt, &a.Precision, &a.Outcome, &createdStr); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Roots returns the certified roots of a run.
func (s *Store) Roots(runID string) ([]RootRecord, error) {
	rows, err := s.db.Query(
		`SELECT box, multiplicity FROM run_roots WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list roots: %w", err)
	}
	defer rows.Close()

	var roots []RootRecord
	for rows.Next() {
		var r RootRecord
		if err := rows.Scan(&r.Box, &r.Multiplicity); err != nil {
			return nil, fmt.Errorf("scan root: %w", err)
		}
		roots = append(roots, r)
	}
	return roots, rows.Err()
}

// #endregion

// #region scanning

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var createdStr string
	if err := row.Scan(&r.RunID, &r.Polynomial, &r.Status, &r.Attempts, &r.FinalPrecision, &createdStr); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return r, nil
}

// #endregion
