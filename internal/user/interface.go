package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Me(ctx context.Context, userID string) (MeOutput, error)
}
