package repository

import (
	"context"

	"conversational-todo/internal/model"
)

// Repository is the composed interface for the todo domain data store.
type Repository interface {
	TodoRepository
}

// TodoRepository defines all data access methods for the Todo entity.
// Every read and write is scoped by UserID; a todo is never visible to a
// user who does not own it.
type TodoRepository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (model.Todo, error)
	GetOneTodo(ctx context.Context, opt GetOneTodoOptions) (model.Todo, error)
	ListTodos(ctx context.Context, opt ListTodosOptions) ([]model.Todo, int, error)
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (model.Todo, error)
	DeleteTodo(ctx context.Context, opt DeleteTodoOptions) error
}
