package classifier

import (
	"context"
)

// Classify determines the intent of a message and extracts its parameters.
//
// Rules run against the normalized text in declaration order. A matching
// rule scores its base confidence, boosted by 1.1 (capped at 0.99) when its
// category is already the running best — corroborating matches within one
// category strengthen it, matches across categories do not. The best score
// is tracked with a strict > comparison, so the first category to reach a
// confidence keeps it on ties. Parameters are extracted from the original,
// non-normalized text.
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	if cached, ok := c.cache.Get(text); ok {
		return copyResult(cached)
	}

	normalized := Normalize(text)

	bestIntent := IntentUnknown
	bestConfidence := 0.0
	var matched []string

	for _, intent := range intentOrder {
		for _, r := range rulesByIntent[intent] {
			if !r.re.MatchString(normalized) {
				continue
			}

			confidence := r.confidence
			if intent == bestIntent {
				confidence = min(confidenceCap, confidence*corroborationBoost)
			}

			if confidence > bestConfidence {
				bestConfidence = confidence
				bestIntent = intent
				matched = append(matched, r.name)
			}
		}
	}

	result := Result{
		Intent:          bestIntent,
		SkillName:       skillByIntent[bestIntent],
		Confidence:      bestConfidence,
		MatchedPatterns: matched,
		Parameters:      extractParameters(text, bestIntent),
	}

	c.l.Debugf(ctx, "%s: intent=%s confidence=%.2f patterns=%v",
		LogPrefixClassify, result.Intent, result.Confidence, result.MatchedPatterns)

	c.cache.Add(text, result)
	return copyResult(result)
}

// copyResult returns a deep enough copy that callers can merge or mutate
// parameters without corrupting the cached entry.
func copyResult(r Result) Result {
	out := r
	if r.MatchedPatterns != nil {
		out.MatchedPatterns = append([]string(nil), r.MatchedPatterns...)
	}
	out.Parameters = make(map[string]interface{}, len(r.Parameters))
	for k, v := range r.Parameters {
		out.Parameters[k] = v
	}
	return out
}
