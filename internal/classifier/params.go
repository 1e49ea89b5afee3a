package classifier

import (
	"regexp"
	"strings"
)

// Content extraction: ordered capture patterns tried first, then a
// strip-the-keywords fallback. Case-insensitive because they run against
// the original text.
var contentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:create|add|make|new|set up|schedule|plan|update|change|modify|edit|adjust|show|list|display|see|view|find|get|tell me|what).*?\b(todo|task|to-do|thing|item|do|appointment|reminder)\b\s+(.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)(?:add|create|new|make)\s+(.+?)(?:\s+for|\s+by|\s+on|\s+at|\.|$)`),
	regexp.MustCompile(`(?i)(?:to|that|should)\s+(do|buy|call|meet|work on|prepare|finish|complete)\s+(.+?)(?:\s+for|\s+by|\s+on|\s+at|\.|$)`),
}

var (
	leadingActionRe = regexp.MustCompile(`(?i)^(create|add|make|new|set up|schedule|plan|update|change|modify|edit|adjust|show|list|display|see|view|find|get|tell me|what)\s+`)
	todoNounRe      = regexp.MustCompile(`(?i)\b(todo|task|to-do|thing|item|do|appointment|reminder)\b\s*`)
)

// Due-date extraction: first matching pattern wins; the value stored is a
// normalized token ("next_week", "in_3_days", "by_date:12/25"), never a
// parsed date — resolution happens downstream.
var datePatterns = []struct {
	re    *regexp.Regexp
	token func(m []string) string
}{
	{regexp.MustCompile(`(?i)\btoday\b`), func([]string) string { return "today" }},
	{regexp.MustCompile(`(?i)\btomorrow\b`), func([]string) string { return "tomorrow" }},
	{regexp.MustCompile(`(?i)\bnext week\b`), func([]string) string { return "next_week" }},
	{regexp.MustCompile(`(?i)\bnext month\b`), func([]string) string { return "next_month" }},
	{regexp.MustCompile(`(?i)\bin (\d+) days?\b`), func(m []string) string { return "in_" + m[1] + "_days" }},
	{regexp.MustCompile(`(?i)\bon (\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?)\b`), func(m []string) string { return "on_date:" + m[1] }},
	{regexp.MustCompile(`(?i)\bby (\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?)\b`), func(m []string) string { return "by_date:" + m[1] }},
	{regexp.MustCompile(`(?i)\bby (monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`), func(m []string) string { return "by_day:" + strings.ToLower(m[1]) }},
}

// Priority extraction: first bucket with any match wins; buckets are tried
// high, medium, low. No match leaves priority unset.
var priorityBuckets = []struct {
	value string
	re    *regexp.Regexp
}{
	{"high", regexp.MustCompile(`(?i)\b(high|top|critical|urgent|important)\b`)},
	{"medium", regexp.MustCompile(`(?i)\b(medium|normal|regular)\b`)},
	{"low", regexp.MustCompile(`(?i)\b(low|lowest)\b`)},
}

var categoryRe = regexp.MustCompile(`(?i)\b(work|personal|shopping|health|home|family|school|business)\b`)

// extractParameters derives content, due_date, priority and category from
// the original text. The four extractions are independent — a miss on one
// never blocks the others.
func extractParameters(text string, intent Intent) map[string]interface{} {
	params := make(map[string]interface{})

	if intent == IntentCreateTodo || intent == IntentUpdateTodo || intent == IntentQueryTodos {
		if content := extractContent(text); content != "" {
			params[ParamContent] = content
		}
	}

	for _, dp := range datePatterns {
		if m := dp.re.FindStringSubmatch(text); m != nil {
			params[ParamDueDate] = dp.token(m)
			break
		}
	}

	for _, bucket := range priorityBuckets {
		if bucket.re.MatchString(text) {
			params[ParamPriority] = bucket.value
			break
		}
	}

	if m := categoryRe.FindStringSubmatch(text); m != nil {
		params[ParamCategory] = strings.ToLower(m[1])
	}

	return params
}

// extractContent takes the first content pattern that matches and returns
// its last non-empty capture group; failing that, it strips the leading
// action word and all todo nouns and returns the remainder.
func extractContent(text string) string {
	for _, re := range contentPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for i := len(m) - 1; i >= 1; i-- {
			if group := strings.TrimSpace(m[i]); group != "" {
				return group
			}
		}
	}

	clean := leadingActionRe.ReplaceAllString(text, "")
	clean = todoNounRe.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}
