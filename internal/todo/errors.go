package todo

import "errors"

var (
	ErrTodoNotFound     = errors.New("todo not found")
	ErrEmptyTitle       = errors.New("title is required")
	ErrNoFields         = errors.New("no fields to update")
	ErrInvalidPriority  = errors.New("priority must be between 1 and 5")
	ErrInvalidDueFilter = errors.New("unrecognized due date filter")
)
