package usecase

import (
	"context"
	"time"

	"conversational-todo/internal/model"
	"conversational-todo/internal/todo"
	repo "conversational-todo/internal/todo/repository"
)

// List returns a filtered, paginated list of the scoped user's Todos.
//
// The due filter works on stored tokens: each candidate's token is resolved
// against today and kept when it lands on or before the end of the filter
// day. Todos without a due date, or with a token the resolver does not
// understand, are excluded by a due filter.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input todo.ListInput) (todo.ListOutput, error) {
	opt := repo.ListTodosOptions{
		UserID:    sc.UserID,
		Completed: input.Completed,
		Priority:  input.Priority,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}

	if input.DueToken == "" {
		todos, total, err := uc.repo.ListTodos(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
			return todo.ListOutput{}, err
		}
		return todo.ListOutput{Todos: todos, Total: total, Limit: input.Limit, Offset: input.Offset}, nil
	}

	// Due filtering cannot run in SQL because due dates are stored as
	// unresolved tokens. Fetch the full filtered set and page in memory.
	opt.Limit = 0
	opt.Offset = 0
	todos, _, err := uc.repo.ListTodos(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return todo.ListOutput{}, err
	}

	now := time.Now()
	cutoffDay, err := uc.parser.Parse(input.DueToken, now)
	if err != nil {
		return todo.ListOutput{}, todo.ErrInvalidDueFilter
	}
	cutoff := uc.parser.EndOfDay(cutoffDay)

	var matched []model.Todo
	for _, t := range todos {
		if t.DueDate == "" {
			continue
		}
		due, err := uc.parser.Parse(t.DueDate, now)
		if err != nil {
			continue
		}
		if !due.After(cutoff) {
			matched = append(matched, t)
		}
	}

	total := len(matched)
	page := paginate(matched, input.Limit, input.Offset)
	return todo.ListOutput{Todos: page, Total: total, Limit: input.Limit, Offset: input.Offset}, nil
}

// paginate slices todos by limit/offset. Limit <= 0 means no limit.
func paginate(todos []model.Todo, limit, offset int) []model.Todo {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(todos) {
		return nil
	}
	todos = todos[offset:]
	if limit > 0 && limit < len(todos) {
		todos = todos[:limit]
	}
	return todos
}
