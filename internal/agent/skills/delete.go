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

// DeleteSkill removes existing todos.
type DeleteSkill struct {
	todoUC todo.UseCase
	l      log.Logger
}

func NewDeleteSkill(todoUC todo.UseCase, l log.Logger) *DeleteSkill {
	return &DeleteSkill{
		todoUC: todoUC,
		l:      l,
	}
}

func (s *DeleteSkill) Name() string {
	return "todo_delete_skill"
}

func (s *DeleteSkill) Description() string {
	return "Deletes existing todos based on natural language input"
}

func (s *DeleteSkill) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"todo_id": map[string]interface{}{
				"type":        "integer",
				"description": "The ID of the todo to delete",
			},
		},
		"required": []string{"todo_id"},
	}
}

func (s *DeleteSkill) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (res agent.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.l.Errorf(ctx, "skills.Delete panic: %v", r)
			res = agent.Result{Success: false, Message: "Failed to delete todo", Error: fmt.Sprint(r)}
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

	out, err := s.todoUC.Delete(ctx, sc, todoID)
	if errors.Is(err, todo.ErrTodoNotFound) {
		return agent.Result{
			Success: false,
			Message: fmt.Sprintf("Todo with ID %d not found or doesn't belong to user", todoID),
			Error:   "Todo not found or access denied",
		}
	}
	if err != nil {
		s.l.Errorf(ctx, "skills.Delete: %v", err)
		return agent.Result{Success: false, Message: "Failed to delete todo", Error: err.Error()}
	}

	return agent.Result{
		Success: true,
		Message: fmt.Sprintf("Successfully deleted todo: '%s' (ID: %d)", out.DeletedTitle, out.DeletedID),
		Data: map[string]interface{}{
			"deleted_todo_id": out.DeletedID,
			"deleted_title":   out.DeletedTitle,
		},
	}
}
