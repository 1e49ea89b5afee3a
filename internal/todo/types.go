package todo

import "conversational-todo/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Priority    int    // 0 means unset, defaults to PriorityMedium
	DueDate     string // unresolved token, e.g. "tomorrow" or "by_date:12/25"
}

// ListInput filters are optional; nil pointers mean "no filter".
type ListInput struct {
	Completed *bool
	Priority  *int
	DueToken  string // resolved against today, matches todos due up to that day
	Limit     int
	Offset    int
}

// UpdateInput carries only the fields to change. Nil pointers are left
// untouched.
type UpdateInput struct {
	ID          int64
	Title       *string
	Description *string
	Completed   *bool
	Priority    *int
	DueDate     *string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Todo model.Todo
}

type ListOutput struct {
	Todos  []model.Todo
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Todo model.Todo
}

type UpdateOutput struct {
	Todo model.Todo
}

type DeleteOutput struct {
	DeletedID    int64
	DeletedTitle string
}
