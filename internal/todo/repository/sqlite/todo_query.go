package sqlite

import (
	"fmt"
	"strings"
	"time"

	repo "conversational-todo/internal/todo/repository"
)

// buildListWhere builds the WHERE clause + args shared by the count and
// page queries. UserID is always the first condition.
func (r *implRepository) buildListWhere(opt repo.ListTodosOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *opt.Completed)
	}
	if opt.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, *opt.Priority)
	}

	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for
// ListTodos.
func (r *implRepository) buildListQuery(opt repo.ListTodosOptions) (string, []any) {
	where, args := r.buildListWhere(opt)
	parts := []string{"WHERE " + where}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}
	if opt.Offset > 0 {
		if opt.Limit <= 0 {
			// SQLite requires LIMIT before OFFSET
			parts = append(parts, "LIMIT -1")
		}
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

// buildUpdateSet builds the SET clause + args from the non-nil fields of
// opt. Returns "" when nothing is set.
func (r *implRepository) buildUpdateSet(opt repo.UpdateTodoOptions) (string, []any) {
	var sets []string
	var args []any

	if opt.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *opt.Description)
	}
	if opt.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *opt.Completed)
	}
	if opt.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *opt.Priority)
	}
	if opt.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, *opt.DueDate)
	}

	if len(sets) == 0 {
		return "", nil
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now())
	return strings.Join(sets, ", "), args
}
