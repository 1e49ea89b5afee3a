package classifier

import "strings"

// contractions are expanded in order: the specific forms first, then the
// generic n't catch-all. Order matters — "won't" must not degrade to "wo not".
var contractions = []struct{ from, to string }{
	{"i'm", "i am"},
	{"don't", "do not"},
	{"won't", "will not"},
	{"can't", "cannot"},
	{"n't", " not"},
}

// Normalize lowercases text, collapses whitespace runs to single spaces and
// expands common contractions. It is pure and idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	for _, c := range contractions {
		normalized = strings.ReplaceAll(normalized, c.from, c.to)
	}
	return normalized
}
