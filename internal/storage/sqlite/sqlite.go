// Package sqlite stores the task run history in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/storage"
	"github.com/netauto/cvpctl/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})

	return nil
}

// Repository is a SQLite implementation of storage.TaskRunRepository.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

var _ storage.TaskRunRepository = &Repository{}

// NewRepository opens the database, creating it when missing, and applies the
// schema migrations.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, err
	}

	cfg.Logger.Debugf("Task run history at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database.
func (r *Repository) Close() error { return r.db.Close() }

func (r *Repository) CreateTaskRun(ctx context.Context, tr model.TaskRun) error {
	if tr.ID == "" || tr.TaskID == "" {
		return fmt.Errorf("task run id and task id are required: %w", model.ErrNotValid)
	}

	query := `
		INSERT INTO task_runs (
			id, task_id, hostname,
			status, state, attempts,
			started_at, finished_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		tr.ID,
		tr.TaskID,
		tr.Hostname,
		string(tr.Status),
		string(tr.State),
		tr.Attempts,
		tr.StartedAt.UnixMilli(),
		tr.FinishedAt.UnixMilli(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: task_runs.") {
			return fmt.Errorf("task run %s: %w", tr.ID, model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert task run: %w", err)
	}

	r.logger.Debugf("Stored task run %s for task %s", tr.ID, tr.TaskID)
	return nil
}

// ListTaskRuns returns the runs, newest first.
func (r *Repository) ListTaskRuns(ctx context.Context, filter storage.TaskRunFilter) ([]model.TaskRun, error) {
	query := `
		SELECT
			id, task_id, hostname,
			status, state, attempts,
			started_at, finished_at
		FROM task_runs
	`
	var args []any
	if filter.TaskID != "" {
		query += " WHERE task_id = ?"
		args = append(args, filter.TaskID)
	}
	// ULIDs sort by creation time.
	query += " ORDER BY started_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query task runs: %w", err)
	}
	defer rows.Close()

	runs := []model.TaskRun{}
	for rows.Next() {
		tr, err := scanTaskRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate task runs: %w", err)
	}

	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRun(s scanner) (model.TaskRun, error) {
	var (
		tr                    model.TaskRun
		status, state         string
		startedAt, finishedAt int64
	)
	err := s.Scan(
		&tr.ID,
		&tr.TaskID,
		&tr.Hostname,
		&status,
		&state,
		&tr.Attempts,
		&startedAt,
		&finishedAt,
	)
	if err != nil {
		return model.TaskRun{}, fmt.Errorf("could not scan task run: %w", err)
	}

	tr.Status = model.TaskStatus(status)
	tr.State = model.TaskWaitState(state)
	tr.StartedAt = timeFromUnixMilli(startedAt)
	tr.FinishedAt = timeFromUnixMilli(finishedAt)

	return tr, nil
}

func timeFromUnixMilli(ms int64) time.Time { return time.UnixMilli(ms).UTC() }
