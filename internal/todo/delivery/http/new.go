package http

import (
	"conversational-todo/internal/todo"
	"conversational-todo/pkg/datemath"
	"conversational-todo/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     todo.UseCase
	parser *datemath.Parser
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase, parser *datemath.Parser) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
	}
}
