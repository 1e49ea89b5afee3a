package orchestrator

import (
	"regexp"
	"strings"
)

// Coarse second-pass extraction, independent of the classifier's own
// parameter extraction. Its keys are merged under the classifier's on
// collision, so this only ever adds context the classifier missed.

var coarseDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)today`),
	regexp.MustCompile(`(?i)tomorrow`),
	regexp.MustCompile(`(?i)next week`),
	regexp.MustCompile(`(?i)next month`),
	regexp.MustCompile(`(?i)in (\d+) days?`),
	regexp.MustCompile(`(?i)on (\d{1,2}[/-]\d{1,2}[/-]?\d{2,4})`),
	regexp.MustCompile(`(?i)by (\d{1,2}[/-]\d{1,2}[/-]?\d{2,4})`),
}

// Priority here requires an explicit "priority"/"prio"/"p" suffix, unlike
// the classifier's bare keyword buckets.
var coarsePriorityPatterns = []struct {
	value string
	re    *regexp.Regexp
}{
	{"high", regexp.MustCompile(`(?i)(high|top|critical|urgent|important)\s*(priority|prio|p)`)},
	{"medium", regexp.MustCompile(`(?i)(medium|normal|regular)\s*(priority|prio|p)`)},
	{"low", regexp.MustCompile(`(?i)(low|lowest)\s*(priority|prio|p)`)},
}

var coarseCategoryRe = regexp.MustCompile(`(?i)(work|personal|shopping|health|home|family|school)`)

// extractCoarseParameters scans text for date, priority and category hints.
func extractCoarseParameters(text string) map[string]interface{} {
	params := make(map[string]interface{})

	for _, re := range coarseDatePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := m[0]
		if len(m) > 1 {
			value = m[1]
		}
		params["date"] = value
		break
	}

	for _, p := range coarsePriorityPatterns {
		if p.re.MatchString(text) {
			params["priority"] = p.value
			break
		}
	}

	if m := coarseCategoryRe.FindStringSubmatch(text); m != nil {
		params["category"] = strings.ToLower(m[1])
	}

	return params
}
