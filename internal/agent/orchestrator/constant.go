package orchestrator

// Log prefixes
const (
	LogPrefixProcessMessage = "internal.agent.orchestrator.ProcessMessage"
)

// Configuration defaults
const (
	DefaultConfidenceThreshold = 0.5
	MaxMessageLength           = 2000
	fallbackEchoLimit          = 50
)

// Response messages
const (
	MsgRephrase        = "I couldn't understand the parameters in your request. Could you please rephrase?"
	MsgIssueTemplate   = "I encountered an issue: %s"
	MsgPanicTemplate   = "I encountered an unexpected error while processing your request: %v"
	MsgNoSkillTemplate = "I recognize the intent '%s' but I don't have the capability to handle it yet."

	fallbackTemplate = "I'm not sure I understood your request: '%s'. " +
		"You can try commands like 'Create a new task to buy groceries', " +
		"'Show me my tasks for today', 'Mark task 1 as complete', or " +
		"'Delete the meeting prep task'."
)
