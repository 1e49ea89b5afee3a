package todo

import (
	"context"

	"conversational-todo/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Todo CRUD, always scoped to the calling user.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id int64) (DeleteOutput, error)
}
