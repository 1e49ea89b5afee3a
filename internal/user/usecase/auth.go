package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"conversational-todo/internal/user"
	repo "conversational-todo/internal/user/repository"
)

const minPasswordLength = 8

// Register creates a new account and issues an access token for it.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return user.AuthOutput{}, user.ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return user.AuthOutput{}, user.ErrWeakPassword
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register bcrypt: %v", err)
		return user.AuthOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	token, err := uc.scope.IssueToken(created.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register IssueToken: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{User: created, Token: token}, nil
}

// Login verifies credentials and issues an access token. Bad email and bad
// password are indistinguishable to the caller.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if found.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.scope.IssueToken(found.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login IssueToken: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{User: found, Token: token}, nil
}

// Me returns the account behind an authenticated user ID.
func (uc *implUseCase) Me(ctx context.Context, userID string) (user.MeOutput, error) {
	found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return user.MeOutput{}, err
	}
	if found.ID == "" {
		return user.MeOutput{}, user.ErrUserNotFound
	}
	return user.MeOutput{User: found}, nil
}
