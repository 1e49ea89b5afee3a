package skills

import (
	"context"
	"fmt"
	"strings"

	"conversational-todo/internal/agent"
	"conversational-todo/internal/model"
	"conversational-todo/internal/todo"
	"conversational-todo/pkg/log"
)

const querySummaryLimit = 3

// QuerySkill lists the user's todos with optional status and priority
// filters and renders a short conversational summary.
type QuerySkill struct {
	todoUC todo.UseCase
	l      log.Logger
}

func NewQuerySkill(todoUC todo.UseCase, l log.Logger) *QuerySkill {
	return &QuerySkill{
		todoUC: todoUC,
		l:      l,
	}
}

func (s *QuerySkill) Name() string {
	return "todo_query_skill"
}

func (s *QuerySkill) Description() string {
	return "Queries and retrieves user's todos based on natural language input"
}

func (s *QuerySkill) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"status": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"completed", "pending", "all"},
				"description": "Filter by completion status (optional)",
			},
			"priority": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"high", "medium", "low"},
				"description": "Filter by priority level (optional)",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Filter by category (optional)",
			},
			"due_date_filter": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"today", "this-week", "overdue", "upcoming"},
				"description": "Filter by due date context (optional)",
			},
		},
	}
}

func (s *QuerySkill) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (res agent.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.l.Errorf(ctx, "skills.Query panic: %v", r)
			res = agent.Result{Success: false, Message: "Failed to query todos", Error: fmt.Sprint(r)}
		}
	}()

	input := todo.ListInput{}

	statusFilter, _ := stringParam(params, "status")
	switch statusFilter {
	case "completed":
		completed := true
		input.Completed = &completed
	case "pending":
		completed := false
		input.Completed = &completed
	}

	priorityFilter, _ := stringParam(params, "priority")
	if p, ok := priorityByName[strings.ToLower(priorityFilter)]; ok {
		priority := p
		input.Priority = &priority
	}

	// due_date_filter is accepted but not applied here. Conversational due
	// queries stay coarse; precise due filtering lives on the REST list
	// endpoint.

	out, err := s.todoUC.List(ctx, sc, input)
	if err != nil {
		s.l.Errorf(ctx, "skills.Query: %v", err)
		return agent.Result{Success: false, Message: "Failed to query todos", Error: err.Error()}
	}

	todoList := make([]map[string]interface{}, 0, len(out.Todos))
	for _, t := range out.Todos {
		todoList = append(todoList, map[string]interface{}{
			"id":          t.ID,
			"title":       t.Title,
			"description": t.Description,
			"completed":   t.Completed,
			"priority":    priorityName(t.Priority),
			"due_date":    t.DueDate,
		})
	}

	filtersApplied := map[string]interface{}{}
	for k, v := range params {
		if v != nil {
			filtersApplied[k] = v
		}
	}

	return agent.Result{
		Success: true,
		Message: s.summarize(out.Todos, statusFilter, priorityFilter),
		Data: map[string]interface{}{
			"count":           len(todoList),
			"todos":           todoList,
			"filters_applied": filtersApplied,
		},
	}
}

// summarize renders the conversational reply: a count line, up to three
// titles with completion markers, and a "more" suffix past that.
func (s *QuerySkill) summarize(todos []model.Todo, statusFilter, priorityFilter string) string {
	statusDesc := ""
	if statusFilter != "" && statusFilter != "all" {
		statusDesc = " " + statusFilter
	}
	priorityDesc := ""
	if priorityFilter != "" {
		priorityDesc = " " + priorityFilter
	}

	if len(todos) == 0 {
		return fmt.Sprintf("You don't have any%s%s tasks right now.", statusDesc, priorityDesc)
	}

	count := len(todos)
	plural := "s"
	if count == 1 {
		plural = ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d%s%s task%s:", count, statusDesc, priorityDesc, plural)
	for i, t := range todos {
		if i == querySummaryLimit {
			break
		}
		marker := "[ ]"
		if t.Completed {
			marker = "[x]"
		}
		fmt.Fprintf(&b, "\n- %s %s", marker, t.Title)
	}
	if count > querySummaryLimit {
		fmt.Fprintf(&b, "\n... and %d more.", count-querySummaryLimit)
	}
	return b.String()
}
