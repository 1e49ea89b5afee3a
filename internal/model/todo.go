package model

import "time"

// Priority bounds. Priority is an int from 1 (highest) to 5 (lowest);
// the chat layer maps the words high/medium/low onto 1/3/5.
const (
	PriorityHigh   = 1
	PriorityMedium = 3
	PriorityLow    = 5
)

// Todo is a single todo item. Every todo is owned by exactly one user and
// all persistence operations filter by (id, user_id) jointly.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	Priority    int // 1 (high) to 5 (low)
	// DueDate holds the unresolved due-date token as extracted from chat
	// ("tomorrow", "in_3_days", "by_date:12/25") or supplied via the REST
	// API. Resolution to an absolute time happens at the edge (pkg/datemath).
	DueDate   string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
