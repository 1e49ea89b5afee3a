package orchestrator

import (
	"context"

	"conversational-todo/internal/classifier"
)

// Classifier is the intent classification dependency.
type Classifier interface {
	Classify(ctx context.Context, text string) classifier.Result
}

// Envelope is the structured outcome of one processed message. It is
// always well-formed; ProcessMessage never fails outward.
type Envelope struct {
	Response            string                 `json:"response"`
	Intent              string                 `json:"intent"`
	Confidence          float64                `json:"confidence"`
	ActionTaken         map[string]interface{} `json:"action_taken"`
	ParametersExtracted map[string]interface{} `json:"parameters_extracted"`
}
