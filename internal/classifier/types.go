package classifier

// Intent represents the classified purpose of a user message.
type Intent string

const (
	IntentCreateTodo Intent = "CREATE_TODO"
	IntentUpdateTodo Intent = "UPDATE_TODO"
	IntentDeleteTodo Intent = "DELETE_TODO"
	IntentQueryTodos Intent = "QUERY_TODOS"
	IntentUnknown    Intent = "UNKNOWN"
)

// Result is the structured outcome of classifying one message. It is
// created fresh per call and never persisted.
type Result struct {
	Intent Intent
	// SkillName is the registry name of the skill handling the intent;
	// empty when the intent is UNKNOWN.
	SkillName string
	// Confidence is a heuristic score in [0, 0.99]; not a probability.
	Confidence float64
	// MatchedPatterns records, in order, the name of every rule that
	// improved the running best score — the improvement history, not just
	// the final winner.
	MatchedPatterns []string
	// Parameters holds fields extracted from the original (non-normalized)
	// text: content, due_date, priority, category. A missing key means the
	// field was not mentioned.
	Parameters map[string]interface{}
}

// Parameter keys produced by extraction.
const (
	ParamContent  = "content"
	ParamDueDate  = "due_date"
	ParamPriority = "priority"
	ParamCategory = "category"
)
