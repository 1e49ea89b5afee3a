package skills

import (
	"encoding/json"
	"strconv"
	"strings"

	"conversational-todo/internal/model"
)

// priorityByName maps the conversational priority words onto the stored
// 1..5 scale (1=high, 5=low).
var priorityByName = map[string]int{
	"high":   model.PriorityHigh,
	"medium": model.PriorityMedium,
	"low":    model.PriorityLow,
}

var priorityNameByValue = map[int]string{
	model.PriorityHigh:   "high",
	model.PriorityMedium: "medium",
	model.PriorityLow:    "low",
}

// priorityValue maps a priority word to its stored value. Unknown words
// fall back to medium.
func priorityValue(name string) int {
	if v, ok := priorityByName[strings.ToLower(name)]; ok {
		return v
	}
	return model.PriorityMedium
}

// priorityName maps a stored value back to its word; unmapped values read
// as medium.
func priorityName(value int) string {
	if n, ok := priorityNameByValue[value]; ok {
		return n
	}
	return "medium"
}

// stringParam reads a string parameter. Non-string values are rejected,
// not coerced.
func stringParam(params map[string]interface{}, key string) (string, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// boolParam reads a bool parameter, accepting "true"/"false" strings since
// extracted parameters arrive as text.
func boolParam(params map[string]interface{}, key string) (bool, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return false, false
	}
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.ToLower(b))
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}

// idParam reads a todo ID, accepting the numeric shapes JSON decoding and
// text extraction produce.
func idParam(params map[string]interface{}, key string) (int64, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return 0, false
	}
	switch id := v.(type) {
	case int64:
		return id, true
	case int:
		return int64(id), true
	case float64:
		return int64(id), true
	case json.Number:
		n, err := id.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
