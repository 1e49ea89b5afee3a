package agent

import "errors"

var (
	ErrInvalidSkillName       = errors.New("skill name is required")
	ErrSkillAlreadyRegistered = errors.New("skill already registered")
	ErrSkillNotFound          = errors.New("skill not found")
	ErrMissingParameters      = errors.New("missing required parameters")
)
