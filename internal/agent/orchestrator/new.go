package orchestrator

import (
	"conversational-todo/internal/agent"
	"conversational-todo/pkg/log"
)

// Orchestrator owns the classifier and the skill registry and turns raw
// chat messages into executed skills and conversational replies.
type Orchestrator struct {
	classifier Classifier
	registry   *agent.SkillRegistry
	l          log.Logger
	threshold  float64
}

func New(classifier Classifier, registry *agent.SkillRegistry, l log.Logger, threshold float64) *Orchestrator {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	return &Orchestrator{
		classifier: classifier,
		registry:   registry,
		l:          l,
		threshold:  threshold,
	}
}
