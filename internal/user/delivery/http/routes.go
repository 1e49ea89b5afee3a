package http

import (
	"github.com/gin-gonic/gin"

	"conversational-todo/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Register and Login are public,
// Me requires a valid token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", mw.RateLimit(), h.Register)
		auth.POST("/login", mw.RateLimit(), h.Login)
		auth.GET("/me", mw.Auth(), h.Me)
	}
}
