package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"conversational-todo/internal/todo"
	"conversational-todo/pkg/response"
)

// respondError translates use-case errors into HTTP responses. Unknown errors
// are logged and hidden behind a generic 500.
func (h *handler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, todo.ErrTodoNotFound):
		response.NotFound(c, err)
	case errors.Is(err, todo.ErrEmptyTitle),
		errors.Is(err, todo.ErrNoFields),
		errors.Is(err, todo.ErrInvalidPriority),
		errors.Is(err, todo.ErrInvalidDueFilter):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "todo.delivery.http.%s: %v", op, err)
		response.InternalError(c, err)
	}
}
