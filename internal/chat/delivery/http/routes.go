package http

import (
	"github.com/gin-gonic/gin"

	"conversational-todo/internal/middleware"
)

// RegisterRoutes maps the chat endpoint. It requires authentication and is
// rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), mw.RateLimit(), h.Chat)
}
