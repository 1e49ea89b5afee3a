package skills

import (
	"context"
	"errors"
	"fmt"

	"conversational-todo/internal/agent"
	"conversational-todo/internal/model"
	"conversational-todo/internal/todo"
	"conversational-todo/pkg/log"
)

// UpdateSkill applies sparse updates to existing todos.
type UpdateSkill struct {
	todoUC todo.UseCase
	l      log.Logger
}

func NewUpdateSkill(todoUC todo.UseCase, l log.Logger) *UpdateSkill {
	return &UpdateSkill{
		todoUC: todoUC,
		l:      l,
	}
}

func (s *UpdateSkill) Name() string {
	return "todo_update_skill"
}

func (s *UpdateSkill) Description() string {
	return "Updates existing todos based on natural language input"
}

func (s *UpdateSkill) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"todo_id": map[string]interface{}{
				"type":        "integer",
				"description": "The ID of the todo to update",
			},
			"title": map[string]interface{}{
				"type":        "string",
				"description": "The new title for the todo (optional)",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "The new description for the todo (optional)",
			},
			"completed": map[string]interface{}{
				"type":        "boolean",
				"description": "Whether the todo is completed (optional)",
			},
			"priority": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"low", "medium", "high"},
				"description": "The new priority level (optional)",
			},
			"due_date": map[string]interface{}{
				"type":        "string",
				"description": "The new due date for the todo (optional)",
			},
		},
		"required": []string{"todo_id"},
	}
}

func (s *UpdateSkill) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (res agent.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.l.Errorf(ctx, "skills.Update panic: %v", r)
			res = agent.Result{Success: false, Message: "Failed to update todo", Error: fmt.Sprint(r)}
		}
	}()

	todoID, ok := idParam(params, "todo_id")
	if !ok {
		return agent.Result{
			Success: false,
			Message: "Invalid parameters provided",
			Error:   "todo_id must be a number",
		}
	}

	input := todo.UpdateInput{ID: todoID}
	var updatedFields []string

	if title, ok := stringParam(params, "title"); ok {
		input.Title = &title
		updatedFields = append(updatedFields, "title")
	}
	if description, ok := stringParam(params, "description"); ok {
		input.Description = &description
		updatedFields = append(updatedFields, "description")
	}
	if completed, ok := boolParam(params, "completed"); ok {
		input.Completed = &completed
		updatedFields = append(updatedFields, "completed")
	}
	if dueDate, ok := stringParam(params, "due_date"); ok {
		input.DueDate = &dueDate
		updatedFields = append(updatedFields, "due_date")
	}
	if priorityStr, ok := stringParam(params, "priority"); ok {
		priority := priorityValue(priorityStr)
		input.Priority = &priority
		updatedFields = append(updatedFields, "priority")
	}

	if len(updatedFields) == 0 {
		return agent.Result{
			Success: false,
			Message: "No valid fields to update",
			Error:   "No update parameters provided",
		}
	}

	out, err := s.todoUC.Update(ctx, sc, input)
	if errors.Is(err, todo.ErrTodoNotFound) {
		return agent.Result{
			Success: false,
			Message: fmt.Sprintf("Todo with ID %d not found or doesn't belong to user", todoID),
			Error:   "Todo not found or access denied",
		}
	}
	if err != nil {
		s.l.Errorf(ctx, "skills.Update: %v", err)
		return agent.Result{Success: false, Message: "Failed to update todo", Error: err.Error()}
	}

	return agent.Result{
		Success: true,
		Message: fmt.Sprintf("Successfully updated todo ID %d", todoID),
		Data: map[string]interface{}{
			"todo_id":        out.Todo.ID,
			"title":          out.Todo.Title,
			"completed":      out.Todo.Completed,
			"priority":       out.Todo.Priority,
			"updated_fields": updatedFields,
		},
	}
}
