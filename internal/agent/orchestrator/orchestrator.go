package orchestrator

import (
	"context"
	"fmt"

	"conversational-todo/internal/classifier"
	"conversational-todo/internal/model"
)

// ProcessMessage runs the full chat pipeline: sanitize, classify, merge
// extracted parameters, dispatch to a skill, and shape the reply. It never
// returns an error; every failure path folds into the Envelope.
func (o *Orchestrator) ProcessMessage(ctx context.Context, sc model.Scope, message string) (env Envelope) {
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "%s: panic: %v", LogPrefixProcessMessage, r)
			env = Envelope{
				Response:            fmt.Sprintf(MsgPanicTemplate, r),
				Intent:              string(classifier.IntentUnknown),
				ActionTaken:         map[string]interface{}{},
				ParametersExtracted: map[string]interface{}{},
			}
		}
	}()

	sanitized := sanitizeInput(message)

	result := o.classifier.Classify(ctx, sanitized)
	o.l.Infof(ctx, "%s: user=%s intent=%s confidence=%.2f patterns=%v",
		LogPrefixProcessMessage, sc.UserID, result.Intent, result.Confidence, result.MatchedPatterns)

	// Coarse extraction first, classifier parameters win on collision.
	params := extractCoarseParameters(sanitized)
	for k, v := range result.Parameters {
		params[k] = v
	}

	env = Envelope{
		Intent:              string(result.Intent),
		Confidence:          result.Confidence,
		ActionTaken:         map[string]interface{}{},
		ParametersExtracted: params,
	}

	if result.Intent == classifier.IntentUnknown || result.Confidence < o.threshold {
		env.Response = fmt.Sprintf(fallbackTemplate, truncateEcho(sanitized, fallbackEchoLimit))
		o.l.Infof(ctx, "%s: user=%s fallback confidence=%.2f", LogPrefixProcessMessage, sc.UserID, result.Confidence)
		return env
	}

	skill, ok := o.registry.Get(result.SkillName)
	if !ok {
		env.Response = fmt.Sprintf(MsgNoSkillTemplate, result.Intent)
		o.l.Warnf(ctx, "%s: user=%s no skill registered for %s", LogPrefixProcessMessage, sc.UserID, result.SkillName)
		return env
	}

	if err := o.registry.ValidateParameters(result.SkillName, params); err != nil {
		env.Response = MsgRephrase
		o.l.Infof(ctx, "%s: user=%s skill=%s validation failed: %v",
			LogPrefixProcessMessage, sc.UserID, result.SkillName, err)
		return env
	}

	skillResult := skill.Execute(ctx, sc, params)
	o.l.Infof(ctx, "%s: user=%s skill=%s success=%t message=%q",
		LogPrefixProcessMessage, sc.UserID, result.SkillName, skillResult.Success, skillResult.Message)

	if skillResult.Success {
		env.Response = skillResult.Message
		if skillResult.Data != nil {
			env.ActionTaken = skillResult.Data
		}
		return env
	}

	reason := skillResult.Error
	if reason == "" {
		reason = "Unknown error"
	}
	env.Response = fmt.Sprintf(MsgIssueTemplate, reason)
	o.l.Errorf(ctx, "%s: user=%s skill=%s failed: %s", LogPrefixProcessMessage, sc.UserID, result.SkillName, reason)
	return env
}
