// Package sqlite persists maintenance run history in a local SQLite
// database, implementing ports.ReportStore.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glebone/cruxcat/pkg/domain"
	"github.com/glebone/cruxcat/pkg/ports"
)

// Store is a ReportStore backed by one SQLite file.
type Store struct {
	db *sql.DB
}

var _ ports.ReportStore = (*Store)(nil)

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set history db journal mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set history db busy timeout: %w", err)
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL,
	started_at TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	freed_bytes INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS run_ports (
	run_id INTEGER NOT NULL REFERENCES runs(id),
	port TEXT NOT NULL,
	installed TEXT NOT NULL,
	available TEXT NOT NULL,
	status TEXT NOT NULL
)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun persists a finished run with its per-port outcomes.
func (s *Store) SaveRun(ctx context.Context, rec *domain.RunRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin run save: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (kind, started_at, finished_at, freed_bytes) VALUES (?, ?, ?, ?)`,
		string(rec.Kind),
		rec.StartedAt.UTC().Format(time.RFC3339),
		rec.FinishedAt.UTC().Format(time.RFC3339),
		int64(rec.FreedBytes),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for _, o := range rec.Outcomes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_ports (run_id, port, installed, available, status) VALUES (?, ?, ?, ?, ?)`,
			id, o.Port.Name, o.Port.Installed, o.Port.Available, string(o.Status),
		); err != nil {
			return 0, fmt.Errorf("insert outcome for %s: %w", o.Port.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run save: %w", err)
	}
	rec.ID = id
	return id, nil
}

// LatestRun retrieves the most recent run of the given kind, outcomes included.
func (s *Store) LatestRun(ctx context.Context, kind domain.RunKind) (*domain.RunRecord, error) {
	rec := &domain.RunRecord{}
	var started, finished string
	var freed int64

	err := s.db.QueryRowContext(ctx,
		`SELECT id, kind, started_at, finished_at, freed_bytes FROM runs WHERE kind = ? ORDER BY id DESC LIMIT 1`,
		string(kind),
	).Scan(&rec.ID, &rec.Kind, &started, &finished, &freed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query latest run: %w", err)
	}
	if rec.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
		return nil, fmt.Errorf("parse run start time: %w", err)
	}
	if rec.FinishedAt, err = time.Parse(time.RFC3339, finished); err != nil {
		return nil, fmt.Errorf("parse run finish time: %w", err)
	}
	rec.FreedBytes = uint64(freed)

	rows, err := s.db.QueryContext(ctx,
		`SELECT port, installed, available, status FROM run_ports WHERE run_id = ? ORDER BY rowid`,
		rec.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("query run outcomes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var o domain.PortOutcome
		if err := rows.Scan(&o.Port.Name, &o.Port.Installed, &o.Port.Available, &o.Status); err != nil {
			return nil, fmt.Errorf("scan outcome row: %w", err)
		}
		rec.Outcomes = append(rec.Outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcome rows: %w", err)
	}
	return rec, nil
}

// ListRuns retrieves up to limit runs, newest first, without outcomes.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, started_at, finished_at, freed_bytes FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	out := make([]domain.RunRecord, 0)
	for rows.Next() {
		var rec domain.RunRecord
		var started, finished string
		var freed int64
		if err := rows.Scan(&rec.ID, &rec.Kind, &started, &finished, &freed); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("parse run start time: %w", err)
		}
		if rec.FinishedAt, err = time.Parse(time.RFC3339, finished); err != nil {
			return nil, fmt.Errorf("parse run finish time: %w", err)
		}
		rec.FreedBytes = uint64(freed)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run rows: %w", err)
	}
	return out, nil
}
