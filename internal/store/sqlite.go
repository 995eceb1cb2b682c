// v1
// internal/store/sqlite.go

// Package store persists run snapshots in a local SQLite database. The
// state is stored as a JSON payload; columns carry only what queries need.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hyve-systems-inc/simulations-sub001/internal/sim"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	run_id   TEXT    NOT NULL,
	step     INTEGER NOT NULL,
	sim_time REAL    NOT NULL,
	taken_at TEXT    NOT NULL,
	payload  TEXT    NOT NULL,
	PRIMARY KEY (run_id, step)
);
`

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshot schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Save(ctx context.Context, snap sim.Snapshot) error {
	payload, err := json.Marshal(snap.State)
	if err != nil {
		return fmt.Errorf("marshal snapshot state: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshots (run_id, step, sim_time, taken_at, payload) VALUES (?, ?, ?, ?, ?)`,
		snap.RunID, snap.Step, snap.State.Time, snap.Timestamp.UTC().Format(time.RFC3339Nano), string(payload))
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Latest returns the highest-step snapshot of a run.
func (s *Store) Latest(ctx context.Context, runID string) (sim.Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT step, taken_at, payload FROM snapshots WHERE run_id = ? ORDER BY step DESC LIMIT 1`, runID)

	var snap sim.Snapshot
	var takenAt, payload string
	if err := row.Scan(&snap.Step, &takenAt, &payload); err != nil {
		return sim.Snapshot{}, fmt.Errorf("load latest snapshot: %w", err)
	}
	snap.RunID = runID
	if ts, err := time.Parse(time.RFC3339Nano, takenAt); err == nil {
		snap.Timestamp = ts
	}
	if err := json.Unmarshal([]byte(payload), &snap.State); err != nil {
		return sim.Snapshot{}, fmt.Errorf("decode snapshot payload: %w", err)
	}
	return snap, nil
}

// Count reports how many snapshots a run has persisted.
func (s *Store) Count(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
