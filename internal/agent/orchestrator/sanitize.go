package orchestrator

import "strings"

// sanitizeInput strips bracket and brace characters that could smuggle
// markup into stored todos, then truncates to MaxMessageLength characters.
func sanitizeInput(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '<', '>', '(', ')', '{', '}', '[', ']':
			continue
		default:
			b.WriteRune(r)
		}
	}
	out := []rune(b.String())
	if len(out) > MaxMessageLength {
		out = out[:MaxMessageLength]
	}
	return string(out)
}

// truncateEcho shortens a message for inclusion in the fallback reply.
func truncateEcho(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
