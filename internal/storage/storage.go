// Package storage persists tasks, their statuses and the events already
// fired for them in a sqlite database, so a later run can rebuild the same
// planner.System.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tasktide/tasktide/pkg/logger"
	"github.com/tasktide/tasktide/pkg/planner"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// ErrNotFound is returned when no task has the requested ID.
var ErrNotFound = errors.New("task not found")

const timeLayout = time.RFC3339Nano

// Record is a stored task together with the events that already fired.
type Record struct {
	Task  *planner.Task
	Fired []planner.EventKind
}

// Repository reads and writes tasks.
type Repository struct {
	db  *sql.DB
	log logger.Logger
}

// Open opens (and creates if needed) the database at path and makes sure
// the schema exists. A nil logger discards output.
func Open(path string, l logger.Logger) (*Repository, error) {
	if l == nil {
		l = logger.NewNopLogger()
	}
	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("error: cannot create database directory: %w", err)
			}
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open task database: %w", err)
	}
	// sqlite allows one writer; a single connection also keeps an
	// in-memory database alive for the life of the Repository.
	db.SetMaxOpenConns(1)

	r := &Repository{db: db, log: l}
	if err := r.EnsureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	l.Debug("storage: opened %s", path)
	return r, nil
}

// EnsureSchema creates the tables if they do not exist.
func (r *Repository) EnsureSchema() error {
	_, err := r.db.Exec(`
		PRAGMA foreign_keys = ON;
		CREATE TABLE IF NOT EXISTS tasks (
			seq      INTEGER PRIMARY KEY AUTOINCREMENT,
			id       TEXT NOT NULL UNIQUE,
			name     TEXT NOT NULL,
			category TEXT NOT NULL,
			start    TEXT NOT NULL,
			deadline TEXT NOT NULL,
			priority INTEGER NOT NULL,
			duration INTEGER NOT NULL,
			status   TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS fired_events (
			task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
			kind    TEXT NOT NULL,
			PRIMARY KEY (task_id, kind)
		);
	`)
	if err != nil {
		return fmt.Errorf("error: failed to create schema: %w", err)
	}
	return nil
}

// Insert stores a new task. The task must already have an ID.
func (r *Repository) Insert(ctx context.Context, t *planner.Task) error {
	if t.ID == "" {
		return fmt.Errorf("error: cannot store task %q without an id", t.Name)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, name, category, start, deadline, priority, duration, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Name, string(t.Category), t.Start.Format(timeLayout), t.Deadline.Format(timeLayout),
		t.Priority, t.Duration, string(t.Status))
	if err != nil {
		return fmt.Errorf("error: failed to store task %q: %w", t.Name, err)
	}
	r.log.Debug("storage: inserted %q (%s)", t.Name, t.ID)
	return nil
}

// Load returns every stored task in the order it was inserted.
func (r *Repository) Load(ctx context.Context) ([]Record, error) {
	fired, err := r.firedEvents(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, start, deadline, priority, duration, status
		FROM tasks
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("error: failed to query tasks: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			t                             planner.Task
			category, start, deadline, st string
		)
		if err := rows.Scan(&t.ID, &t.Name, &category, &start, &deadline, &t.Priority, &t.Duration, &st); err != nil {
			return nil, fmt.Errorf("error: failed to scan task row: %w", err)
		}
		if t.Category, err = planner.ParseCategory(category); err != nil {
			return nil, fmt.Errorf("error: task %s: %w", t.ID, err)
		}
		if t.Start, err = time.Parse(timeLayout, start); err != nil {
			return nil, fmt.Errorf("error: task %s start: %w", t.ID, err)
		}
		if t.Deadline, err = time.Parse(timeLayout, deadline); err != nil {
			return nil, fmt.Errorf("error: task %s deadline: %w", t.ID, err)
		}
		t.Status = planner.Status(st)
		task := t
		records = append(records, Record{Task: &task, Fired: fired[t.ID]})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to iterate task rows: %w", err)
	}
	r.log.Debug("storage: loaded %d task(s)", len(records))
	return records, nil
}

func (r *Repository) firedEvents(ctx context.Context) (map[string][]planner.EventKind, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT task_id, kind FROM fired_events ORDER BY task_id, kind`)
	if err != nil {
		return nil, fmt.Errorf("error: failed to query fired events: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]planner.EventKind)
	for rows.Next() {
		var id, kind string
		if err := rows.Scan(&id, &kind); err != nil {
			return nil, fmt.Errorf("error: failed to scan fired event: %w", err)
		}
		out[id] = append(out[id], planner.EventKind(kind))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to iterate fired events: %w", err)
	}
	return out, nil
}

// UpdateStatus stores a new status for the task with the given ID.
func (r *Repository) UpdateStatus(ctx context.Context, id string, st planner.Status) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET status = ? WHERE id = ?`, string(st), id)
	if err != nil {
		return fmt.Errorf("error: failed to update status of %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error: failed to update status of %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// MarkFired records that an event of the given kind fired for the task.
// Marking the same event twice is not an error.
func (r *Repository) MarkFired(ctx context.Context, id string, kind planner.EventKind) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO fired_events (task_id, kind) VALUES (?, ?)`, id, string(kind))
	if err != nil {
		return fmt.Errorf("error: failed to record %s event of %s: %w", kind, id, err)
	}
	return nil
}

// Close closes the database.
func (r *Repository) Close() error {
	return r.db.Close()
}
