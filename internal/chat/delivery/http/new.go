package http

import (
	"conversational-todo/internal/agent/orchestrator"
	"conversational-todo/pkg/log"
)

type handler struct {
	l   log.Logger
	orc *orchestrator.Orchestrator
}

// New creates a new HTTP handler for the chat endpoint.
func New(l log.Logger, orc *orchestrator.Orchestrator) *handler {
	return &handler{
		l:   l,
		orc: orc,
	}
}
