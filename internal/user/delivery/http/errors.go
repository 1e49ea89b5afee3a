package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"conversational-todo/internal/user"
	"conversational-todo/pkg/response"
)

// respondError translates use-case errors into HTTP responses. Invalid
// credentials map to a bare 401 so login failures stay indistinguishable.
func (h *handler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c)
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, err)
	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrWeakPassword):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "user.delivery.http.%s: %v", op, err)
		response.InternalError(c, err)
	}
}
