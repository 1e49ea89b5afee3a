package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"conversational-todo/internal/model"
	repo "conversational-todo/internal/todo/repository"
)

const todoColumns = `id, user_id, title, description, completed, priority, due_date, created_at, updated_at`

func scanTodo(row interface{ Scan(...any) error }) (model.Todo, error) {
	var t model.Todo
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed,
		&t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// CreateTodo inserts a new Todo row and returns the created entity.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (model.Todo, error) {
	const query = `
		INSERT INTO todos (user_id, title, description, completed, priority, due_date, created_at, updated_at)
		VALUES (?, ?, ?, 0, ?, ?, ?, ?)`

	now := time.Now()
	res, err := r.db.ExecContext(ctx, query,
		opt.UserID, opt.Title, opt.Description, opt.Priority, opt.DueDate, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return model.Todo{}, repo.ErrFailedToInsert
	}
	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return model.Todo{}, repo.ErrFailedToInsert
	}

	return model.Todo{
		ID:          id,
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetOneTodo retrieves a single Todo by ID within the owner's scope.
// Returns zero-value Todo (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error) {
	query := fmt.Sprintf(`SELECT %s FROM todos WHERE id = ? AND user_id = ? LIMIT 1`, todoColumns)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Todo{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTodo"), err)
		return model.Todo{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTodos returns a filtered, paginated list of the owner's Todos and the
// total count matching the filters.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]model.Todo, int, error) {
	where, whereArgs := r.buildListWhere(opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM todos WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM todos %s`, todoColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return todos, total, nil
}

// UpdateTodo applies the non-nil fields of opt to the owner's Todo and
// returns the updated entity. Returns zero-value Todo when the row does not
// exist in the owner's scope.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
	set, args := r.buildUpdateSet(opt)
	if set == "" {
		return r.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: opt.ID, UserID: opt.UserID})
	}

	query := fmt.Sprintf(`UPDATE todos SET %s WHERE id = ? AND user_id = ?`, set)
	args = append(args, opt.ID, opt.UserID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return model.Todo{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Todo{}, nil
	}

	return r.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: opt.ID, UserID: opt.UserID})
}

// DeleteTodo removes the owner's Todo. Deleting a row that does not exist
// is not an error; callers check existence first when they need to.
func (r *implRepository) DeleteTodo(ctx context.Context, opt repo.DeleteTodoOptions) error {
	const query = `DELETE FROM todos WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
