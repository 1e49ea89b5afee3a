package usecase

import (
	"context"
	"strings"

	"conversational-todo/internal/model"
	"conversational-todo/internal/todo"
	repo "conversational-todo/internal/todo/repository"
)

// Create creates a new Todo owned by the scoped user. The due date is
// stored as its raw token; resolution to a concrete date happens at read
// time.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return todo.CreateOutput{}, todo.ErrEmptyTitle
	}

	priority := input.Priority
	if priority == 0 {
		priority = model.PriorityMedium
	}
	if priority < model.PriorityHigh || priority > model.PriorityLow {
		return todo.CreateOutput{}, todo.ErrInvalidPriority
	}

	created, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTodo: %v", err)
		return todo.CreateOutput{}, err
	}

	return todo.CreateOutput{Todo: created}, nil
}
