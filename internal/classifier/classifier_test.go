package classifier_test

import (
	"context"
	"strings"
	"testing"

	"conversational-todo/internal/classifier"
	"conversational-todo/pkg/log"
)

func newClassifier() *classifier.Classifier {
	return classifier.New(log.NewNop(), 0)
}

func TestClassify(t *testing.T) {
	ctx := context.Background()
	c := newClassifier()

	t.Run("Create Todo Simple", func(t *testing.T) {
		result := c.Classify(ctx, "Create a new task to buy groceries")

		if result.Intent != classifier.IntentCreateTodo {
			t.Errorf("expected CREATE_TODO, got %s", result.Intent)
		}
		if result.SkillName != classifier.SkillNameCreate {
			t.Errorf("expected %s, got %s", classifier.SkillNameCreate, result.SkillName)
		}
		if result.Confidence < 0.8 {
			t.Errorf("expected confidence >= 0.8, got %.2f", result.Confidence)
		}
		content, _ := result.Parameters[classifier.ParamContent].(string)
		if !strings.Contains(content, "buy groceries") {
			t.Errorf("expected content mentioning 'buy groceries', got %q", content)
		}
	})

	t.Run("Create Todo Complex", func(t *testing.T) {
		result := c.Classify(ctx, "I need to create a high priority task to finish the report")

		if result.Intent != classifier.IntentCreateTodo {
			t.Errorf("expected CREATE_TODO, got %s", result.Intent)
		}
		if result.Parameters[classifier.ParamPriority] != "high" {
			t.Errorf("expected high priority, got %v", result.Parameters[classifier.ParamPriority])
		}
	})

	t.Run("Update Todo", func(t *testing.T) {
		result := c.Classify(ctx, "Update the grocery list task to include milk")

		if result.Intent != classifier.IntentUpdateTodo {
			t.Errorf("expected UPDATE_TODO, got %s", result.Intent)
		}
		if result.SkillName != classifier.SkillNameUpdate {
			t.Errorf("expected %s, got %s", classifier.SkillNameUpdate, result.SkillName)
		}
	})

	t.Run("Delete Todo", func(t *testing.T) {
		result := c.Classify(ctx, "Delete the meeting prep task")

		if result.Intent != classifier.IntentDeleteTodo {
			t.Errorf("expected DELETE_TODO, got %s", result.Intent)
		}
		if result.SkillName != classifier.SkillNameDelete {
			t.Errorf("expected %s, got %s", classifier.SkillNameDelete, result.SkillName)
		}
	})

	t.Run("Query Todos", func(t *testing.T) {
		result := c.Classify(ctx, "Show me my tasks")

		if result.Intent != classifier.IntentQueryTodos {
			t.Errorf("expected QUERY_TODOS, got %s", result.Intent)
		}
		if result.SkillName != classifier.SkillNameQuery {
			t.Errorf("expected %s, got %s", classifier.SkillNameQuery, result.SkillName)
		}
	})

	t.Run("Query High Priority", func(t *testing.T) {
		result := c.Classify(ctx, "Show me my high priority tasks")

		if result.Intent != classifier.IntentQueryTodos {
			t.Errorf("expected QUERY_TODOS, got %s", result.Intent)
		}
		if result.Parameters[classifier.ParamPriority] != "high" {
			t.Errorf("expected high priority parameter, got %v", result.Parameters[classifier.ParamPriority])
		}
	})

	t.Run("Empty Input Is Unknown", func(t *testing.T) {
		result := c.Classify(ctx, "")

		if result.Intent != classifier.IntentUnknown {
			t.Errorf("expected UNKNOWN, got %s", result.Intent)
		}
		if result.Confidence != 0.0 {
			t.Errorf("expected confidence 0.0, got %.2f", result.Confidence)
		}
		if result.SkillName != "" {
			t.Errorf("expected empty skill name, got %s", result.SkillName)
		}
	})

	t.Run("Confidence Never Exceeds Cap", func(t *testing.T) {
		messages := []string{
			"add a task to buy milk and also create a todo to call mom",
			"create add make new schedule plan a task todo item to buy groceries",
			"Create a new task to buy groceries",
			"delete remove cancel the task item todo",
			"show list display my tasks todos items for today",
		}
		for _, msg := range messages {
			result := c.Classify(ctx, msg)
			if result.Confidence < 0 || result.Confidence > 0.99 {
				t.Errorf("confidence out of [0, 0.99] for %q: %.4f", msg, result.Confidence)
			}
		}
	})

	t.Run("Corroborating Matches Boost Same Category", func(t *testing.T) {
		// One create rule only.
		single := c.Classify(ctx, "schedule a reminder")
		// Several corroborating create rules.
		multi := c.Classify(ctx, "add a task to buy milk")

		if multi.Confidence <= single.Confidence {
			t.Errorf("expected corroboration to raise confidence: single=%.2f multi=%.2f",
				single.Confidence, multi.Confidence)
		}
		if len(multi.MatchedPatterns) < 2 {
			t.Errorf("expected improvement history with >= 2 patterns, got %v", multi.MatchedPatterns)
		}
	})

	t.Run("Equal Confidence Keeps First Category", func(t *testing.T) {
		// update.change_field and query.timeframe both score 0.75; the
		// update category is declared first and must keep the win.
		result := c.Classify(ctx, "change the status today")

		if result.Intent != classifier.IntentUpdateTodo {
			t.Errorf("expected UPDATE_TODO on tie, got %s", result.Intent)
		}
	})

	t.Run("Matched Patterns Record Improvement History", func(t *testing.T) {
		result := c.Classify(ctx, "add a task to buy milk")

		if len(result.MatchedPatterns) == 0 {
			t.Fatalf("expected matched patterns")
		}
		if result.MatchedPatterns[0] != "create.verb_noun" {
			t.Errorf("expected first improvement to be create.verb_noun, got %s", result.MatchedPatterns[0])
		}
	})

	t.Run("Cached Result Is Isolated", func(t *testing.T) {
		first := c.Classify(ctx, "Create a new task to buy groceries")
		first.Parameters["content"] = "tampered"
		first.MatchedPatterns[0] = "tampered"

		second := c.Classify(ctx, "Create a new task to buy groceries")
		if second.Parameters["content"] == "tampered" {
			t.Errorf("cache entry was mutated through a returned result")
		}
		if second.MatchedPatterns[0] == "tampered" {
			t.Errorf("cached matched patterns were mutated through a returned result")
		}
	})
}

func TestSupportedIntents(t *testing.T) {
	intents := classifier.SupportedIntents()
	if len(intents) != 5 {
		t.Fatalf("expected 5 intents, got %d", len(intents))
	}
}
