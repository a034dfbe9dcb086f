// Package pgstore persists the task upsert view into PostgreSQL.
package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/runoshun/tasktracker/internal/domain"
)

// Ensure Store implements domain.UpsertSink.
var _ domain.UpsertSink = (*Store)(nil)

const upsertSQL = `
	INSERT INTO tasks (title, due_date, priority, category, completed)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (title, due_date) DO UPDATE SET
		priority  = EXCLUDED.priority,
		category  = EXCLUDED.category,
		completed = EXCLUDED.completed`

// Store is a PostgreSQL-backed upsert sink.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store over an existing pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Open connects to dsn and ensures the tasks table exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	s := New(pool)
	if err := s.EnsureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// EnsureTable creates the tasks table if it doesn't exist.
func (s *Store) EnsureTable(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			title     TEXT,
			due_date  TEXT,
			priority  TEXT,
			category  TEXT,
			completed INTEGER,
			UNIQUE (title, due_date)
		)`)
	if err != nil {
		return fmt.Errorf("ensure tasks table: %w", err)
	}
	return nil
}

// Upsert writes all rows in one transaction.
func (s *Store) Upsert(ctx context.Context, rows []domain.UpsertRow) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Statements in a batch run in order, so a later duplicate key overwrites an earlier one.
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(upsertSQL, row.Title, row.DueDate, row.Priority, row.Category, row.CompletedInt())
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert tasks: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Rows returns every stored row ordered by due date then title.
func (s *Store) Rows(ctx context.Context) ([]domain.UpsertRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT title, due_date, priority, category, completed
		FROM tasks ORDER BY due_date, title`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var result []domain.UpsertRow
	for rows.Next() {
		var r domain.UpsertRow
		var completed int
		if err := rows.Scan(&r.Title, &r.DueDate, &r.Priority, &r.Category, &completed); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		r.Completed = completed != 0
		result = append(result, r)
	}
	return result, rows.Err()
}

// Close releases the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
