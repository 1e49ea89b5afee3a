package http

import (
	"github.com/gin-gonic/gin"

	"conversational-todo/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every todo
// route requires authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	todos := rg.Group("/todos", mw.Auth(), mw.RateLimit())
	{
		todos.POST("", h.Create)
		todos.GET("", h.List)
		todos.GET("/:id", h.Detail)
		todos.PUT("/:id", h.Update)
		todos.DELETE("/:id", h.Delete)
	}
}
