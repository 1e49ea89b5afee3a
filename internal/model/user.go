package model

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and never
// leaves the user domain.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
