// Package sqlitestore persists the task upsert view into a SQLite database.
package sqlitestore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runoshun/tasktracker/internal/domain"
)

//go:embed schema.sql
var schema string

// Ensure DB implements domain.UpsertSink.
var _ domain.UpsertSink = (*DB)(nil)

// DB wraps the database connection.
type DB struct {
	*sql.DB
}

// Open opens (creating if needed) the database at path and initializes the schema.
func Open(ctx context.Context, path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &DB{db}, nil
}

// Upsert writes all rows in one transaction.
// Rows sharing (title, due_date) replace each other; the last one wins.
func (db *DB) Upsert(ctx context.Context, rows []domain.UpsertRow) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO tasks (title, due_date, priority, category, completed)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Title, row.DueDate, row.Priority, row.Category, row.CompletedInt()); err != nil {
			return fmt.Errorf("upsert %q (%s): %w", row.Title, row.DueDate, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Rows returns every stored row ordered by due date then title.
func (db *DB) Rows(ctx context.Context) ([]domain.UpsertRow, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT title, due_date, priority, category, completed
		FROM tasks
		ORDER BY due_date, title
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []domain.UpsertRow
	for rows.Next() {
		var r domain.UpsertRow
		var completed int
		if err := rows.Scan(&r.Title, &r.DueDate, &r.Priority, &r.Category, &completed); err != nil {
			return nil, err
		}
		r.Completed = completed != 0
		result = append(result, r)
	}
	return result, rows.Err()
}
