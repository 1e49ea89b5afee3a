package repository

// CreateTodoOptions holds parameters for inserting a new Todo.
type CreateTodoOptions struct {
	UserID      string
	Title       string
	Description string
	Priority    int
	DueDate     string
}

// GetOneTodoOptions holds filter parameters for fetching a single Todo.
// UserID is mandatory; lookups never cross owner boundaries.
type GetOneTodoOptions struct {
	ID     int64
	UserID string
}

// ListTodosOptions holds filter and pagination parameters for listing
// Todos. Nil pointer filters are skipped.
type ListTodosOptions struct {
	UserID    string
	Completed *bool
	Priority  *int
	Limit     int
	Offset    int
	OrderBy   string
}

// UpdateTodoOptions holds the fields to change on an existing Todo. Nil
// pointers are left untouched.
type UpdateTodoOptions struct {
	ID          int64
	UserID      string
	Title       *string
	Description *string
	Completed   *bool
	Priority    *int
	DueDate     *string
}

// DeleteTodoOptions identifies the Todo to remove, scoped to its owner.
type DeleteTodoOptions struct {
	ID     int64
	UserID string
}
