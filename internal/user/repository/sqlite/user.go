package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"conversational-todo/internal/model"
	repo "conversational-todo/internal/user/repository"
)

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)`

	now := time.Now()
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.Email, opt.PasswordHash, now); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}

	return model.User{
		ID:           opt.ID,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    now,
	}, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	mods, args := buildGetOneQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, email, password_hash, created_at FROM users WHERE %s LIMIT 1`, mods)

	var u model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// buildGetOneQuery builds WHERE clause + args for GetOneUser.
func buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Email != "" {
		conditions = append(conditions, "email = ?")
		args = append(args, opt.Email)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
