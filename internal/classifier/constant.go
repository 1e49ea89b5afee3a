package classifier

import "regexp"

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Skill names, fixed per intent.
const (
	SkillNameCreate = "todo_create_skill"
	SkillNameUpdate = "todo_update_skill"
	SkillNameDelete = "todo_delete_skill"
	SkillNameQuery  = "todo_query_skill"
)

// skillByIntent is the static intent → skill mapping. IntentUnknown has no
// entry and resolves to the empty string.
var skillByIntent = map[Intent]string{
	IntentCreateTodo: SkillNameCreate,
	IntentUpdateTodo: SkillNameUpdate,
	IntentDeleteTodo: SkillNameDelete,
	IntentQueryTodos: SkillNameQuery,
}

// rule is one pattern/confidence pair. Rules are evaluated against
// normalized text in declaration order; the name surfaces in
// Result.MatchedPatterns so a classification can be audited.
type rule struct {
	name       string
	re         *regexp.Regexp
	confidence float64
}

// intentOrder fixes category iteration order. Ties between categories are
// broken by this order: the first-declared category to reach a confidence
// keeps it (strict > comparison downstream).
var intentOrder = []Intent{
	IntentCreateTodo,
	IntentUpdateTodo,
	IntentDeleteTodo,
	IntentQueryTodos,
}

const (
	createVerbs = `create|add|make|new|set up|schedule|plan`
	todoNouns   = `todo|task|to-do|thing|item|do|appointment|reminder`
	actionVerbs = `buy|call|meet|work on|prepare|finish|complete|do|get|pick up|send|write|read|watch|attend|organize|clean|fix|order|pay|cook|exercise|study|learn|review|start|begin|launch|implement|execute|perform|carry out|undertake|achieve|reach|visit`
	intentWords = `i need to|i want to|i have to|i should|i must|i will|i shall|time to|going to|need to|want to|have to|should|must|will|shall|gonna|wanna|gotta|got to`
)

// rulesByIntent holds the full rule table, compiled once at init. The text
// these run against is already lowercased by Normalize.
var rulesByIntent = map[Intent][]rule{
	IntentCreateTodo: {
		{"create.verb_noun", regexp.MustCompile(`\b(` + createVerbs + `)\b.*\b(` + todoNouns + `)\b`), 0.9},
		{"create.add_task", regexp.MustCompile(`\b(add|create)\b.*\b(task|todo)\b`), 0.85},
		{"create.make_reminder", regexp.MustCompile(`\b(make|set up)\b.*\b(reminder|appointment)\b`), 0.85},
		{"create.new_item", regexp.MustCompile(`\b(new)\b.*\b(item|thing to do)\b`), 0.8},
		{"create.verb_action", regexp.MustCompile(`\b(` + createVerbs + `)\b.*\b(to )?(` + actionVerbs + `)\b`), 0.95},
		{"create.intent_action", regexp.MustCompile(`\b(` + intentWords + `)\b.*\b(` + actionVerbs + `)\b`), 0.9},
		{"create.noun_intent", regexp.MustCompile(`\b(` + todoNouns + `)\b.*\b(` + intentWords + `)\b`), 0.85},
	},
	IntentUpdateTodo: {
		{"update.verb_noun", regexp.MustCompile(`\b(update|change|modify|edit|adjust)( the)?\b.*\b(todo|task|to-do|thing|item|description|details|priority|due date|title)\b`), 0.85},
		{"update.modify_task", regexp.MustCompile(`\b(modify|edit|change)\b.*\b(task|todo)\b`), 0.8},
		{"update.change_field", regexp.MustCompile(`\b(change|update|modify)\b.*\b(the )?(description|details|priority|due date|title|status)\b`), 0.75},
		{"update.set_priority", regexp.MustCompile(`\b(make|set|update|change)\b.*\b(priorit|import|urg|secondar|low)`), 0.7},
	},
	IntentDeleteTodo: {
		{"delete.verb_noun", regexp.MustCompile(`\b(delete|remove|cancel|eliminate|get rid of|scrub|erase|wipe|clear|discard|throw away|trash|dispose of)\b.*\b(todo|task|to-do|thing|item)\b`), 0.9},
		{"delete.complete_task", regexp.MustCompile(`\b(complete|finish|done|mark as done|check off|tick off|done with)( the)?\b.*\b(task|todo)\b`), 0.85},
		{"delete.remove_item", regexp.MustCompile(`\b(remove|delete|get rid of|eliminate)\b.*\b(item|entry|the )`), 0.8},
		{"delete.cross_off", regexp.MustCompile(`\b(cross off|check off|mark as done|complete|finish)\b.*\b(my |the )?(list|todos|tasks|to-dos)\b`), 0.8},
	},
	IntentQueryTodos: {
		{"query.verb_noun", regexp.MustCompile(`\b(show|list|display|see|view|find|get|tell me|what)\b.*\b(my )?(todos|tasks|to-dos|things|items)\b`), 0.9},
		{"query.what_my", regexp.MustCompile(`\b(what do i have|what are my|show my|list my|see my|view my|get my|fetch my|retrieve my)\b`), 0.85},
		{"query.timeframe", regexp.MustCompile(`\b(today|tomorrow|this week|this weekend|tonight|upcoming|later|soon|next week|next month|this month|this year)\b`), 0.75},
		{"query.priority_words", regexp.MustCompile(`\b(high priority|urgent|important|critical|top priority|must do|need to do|should do|have to do|immediate|asap|as soon as possible)\b`), 0.7},
		{"query.pending_words", regexp.MustCompile(`\b(uncompleted|incomplete|pending|not done|not finished|not completed|remaining|left to do|still to do|yet to do)\b`), 0.7},
		{"query.completed_words", regexp.MustCompile(`\b(completed|finished|done|marked as done|already done|already completed|completed earlier|past tasks|accomplished|achieved)\b`), 0.7},
	},
}

// Confidence arithmetic for corroborating matches.
const (
	corroborationBoost = 1.1
	confidenceCap      = 0.99
)
