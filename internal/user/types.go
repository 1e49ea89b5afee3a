package user

import "conversational-todo/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

// AuthOutput carries the authenticated user and a fresh access token.
type AuthOutput struct {
	User  model.User
	Token string
}

type MeOutput struct {
	User model.User
}
