package usecase

import (
	"context"
	"strings"

	"conversational-todo/internal/model"
	"conversational-todo/internal/todo"
	repo "conversational-todo/internal/todo/repository"
)

// Detail retrieves a single Todo in the user's scope. Returns
// ErrTodoNotFound when the todo does not exist or belongs to someone else.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (todo.DetailOutput, error) {
	t, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTodo: %v", err)
		return todo.DetailOutput{}, err
	}
	if t.ID == 0 {
		return todo.DetailOutput{}, todo.ErrTodoNotFound
	}
	return todo.DetailOutput{Todo: t}, nil
}

// Update applies a sparse update to the user's Todo. At least one field
// must be set; nil fields keep their current value.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateInput) (todo.UpdateOutput, error) {
	if input.Title == nil && input.Description == nil && input.Completed == nil &&
		input.Priority == nil && input.DueDate == nil {
		return todo.UpdateOutput{}, todo.ErrNoFields
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return todo.UpdateOutput{}, todo.ErrEmptyTitle
	}
	if input.Priority != nil &&
		(*input.Priority < model.PriorityHigh || *input.Priority > model.PriorityLow) {
		return todo.UpdateOutput{}, todo.ErrInvalidPriority
	}

	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTodo: %v", err)
		return todo.UpdateOutput{}, err
	}
	if existing.ID == 0 {
		return todo.UpdateOutput{}, todo.ErrTodoNotFound
	}

	updated, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{
		ID:          input.ID,
		UserID:      sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTodo: %v", err)
		return todo.UpdateOutput{}, err
	}
	if updated.ID == 0 {
		return todo.UpdateOutput{}, todo.ErrTodoNotFound
	}
	return todo.UpdateOutput{Todo: updated}, nil
}

// Delete removes the user's Todo and reports what was removed. Returns
// ErrTodoNotFound when the todo does not exist or belongs to someone else.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) (todo.DeleteOutput, error) {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTodo: %v", err)
		return todo.DeleteOutput{}, err
	}
	if existing.ID == 0 {
		return todo.DeleteOutput{}, todo.ErrTodoNotFound
	}

	if err := uc.repo.DeleteTodo(ctx, repo.DeleteTodoOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return todo.DeleteOutput{}, err
	}

	return todo.DeleteOutput{DeletedID: existing.ID, DeletedTitle: existing.Title}, nil
}
