package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"conversational-todo/internal/model"
	"conversational-todo/pkg/response"
)

const scopeKey = "request_scope"

// Auth verifies the Bearer token and stores the resulting scope on the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: payload.UserID})
		c.Next()
	}
}

// GetScope returns the authenticated scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
