package usecase

import (
	"conversational-todo/internal/todo/repository"
	"conversational-todo/pkg/datemath"
	"conversational-todo/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo   repository.Repository
	parser *datemath.Parser
	l      log.Logger
}

// New creates a new todo UseCase implementation.
func New(repo repository.Repository, parser *datemath.Parser, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		parser: parser,
		l:      l,
	}
}
