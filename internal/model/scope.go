package model

// Scope carries the identity of the requesting user through use cases.
type Scope struct {
	UserID string
}
