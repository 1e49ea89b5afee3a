package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"conversational-todo/internal/todo/repository"
	"conversational-todo/pkg/log"
)

const schema = `
	CREATE TABLE IF NOT EXISTS todos (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id     TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		completed   INTEGER NOT NULL DEFAULT 0,
		priority    INTEGER NOT NULL DEFAULT 3,
		due_date    TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMP NOT NULL,
		updated_at  TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_todos_user ON todos(user_id);
	CREATE INDEX IF NOT EXISTS idx_todos_user_completed ON todos(user_id, completed);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the todo domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("todo/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Migrate creates the todos table and its indexes if missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("todo/repository/sqlite: migrate: %w", err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/sqlite.%s", method)
}
