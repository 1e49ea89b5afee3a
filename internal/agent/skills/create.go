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

// CreateSkill creates new todos from natural language input.
type CreateSkill struct {
	todoUC todo.UseCase
	l      log.Logger
}

func NewCreateSkill(todoUC todo.UseCase, l log.Logger) *CreateSkill {
	return &CreateSkill{
		todoUC: todoUC,
		l:      l,
	}
}

func (s *CreateSkill) Name() string {
	return "todo_create_skill"
}

func (s *CreateSkill) Description() string {
	return "Creates new todos based on natural language input"
}

func (s *CreateSkill) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "The content/description of the todo",
			},
			"due_date": map[string]interface{}{
				"type":        "string",
				"description": "Due date for the todo (optional)",
			},
			"priority": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"low", "medium", "high"},
				"description": "Priority level (default: medium)",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Category/area of life for the todo (optional)",
			},
		},
		"required": []string{"content"},
	}
}

func (s *CreateSkill) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (res agent.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.l.Errorf(ctx, "skills.Create panic: %v", r)
			res = agent.Result{Success: false, Message: "Failed to create todo", Error: fmt.Sprint(r)}
		}
	}()

	content, _ := stringParam(params, "content")
	content = strings.TrimSpace(content)
	if content == "" {
		return agent.Result{
			Success: false,
			Message: "Cannot create a todo without content",
			Error:   "Empty content provided",
		}
	}

	priorityStr := "medium"
	if p, ok := stringParam(params, "priority"); ok {
		priorityStr = strings.ToLower(p)
	}
	dueDate, _ := stringParam(params, "due_date")
	category, _ := stringParam(params, "category")

	out, err := s.todoUC.Create(ctx, sc, todo.CreateInput{
		Title:       content,
		Description: content,
		Priority:    priorityValue(priorityStr),
		DueDate:     dueDate,
	})
	if err != nil {
		s.l.Errorf(ctx, "skills.Create: %v", err)
		return agent.Result{Success: false, Message: "Failed to create todo", Error: err.Error()}
	}

	return agent.Result{
		Success: true,
		Message: fmt.Sprintf("Successfully created todo: '%s'", content),
		Data: map[string]interface{}{
			"todo_id":  out.Todo.ID,
			"content":  content,
			"due_date": out.Todo.DueDate,
			"priority": priorityName(out.Todo.Priority),
			"category": category,
		},
	}
}
