package usecase

import (
	"conversational-todo/internal/user/repository"
	"conversational-todo/pkg/log"
	"conversational-todo/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo  repository.Repository
	scope scope.Manager
	l     log.Logger
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, scopeManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		scope: scopeManager,
		l:     l,
	}
}
