package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"conversational-todo/internal/agent"
	"conversational-todo/internal/agent/orchestrator"
	"conversational-todo/internal/agent/skills"
	chatHTTP "conversational-todo/internal/chat/delivery/http"
	"conversational-todo/internal/classifier"
	"conversational-todo/internal/middleware"
	"conversational-todo/internal/todo"
	todoHTTP "conversational-todo/internal/todo/delivery/http"
	todoSqlite "conversational-todo/internal/todo/repository/sqlite"
	todoUsecase "conversational-todo/internal/todo/usecase"
	userHTTP "conversational-todo/internal/user/delivery/http"
	userSqlite "conversational-todo/internal/user/repository/sqlite"
	userUsecase "conversational-todo/internal/user/usecase"
)

// setupUserDomain initializes the user domain and registers the auth routes.
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := userSqlite.New(srv.db, srv.l)
	uc := userUsecase.New(repo, srv.jwtManager, srv.l)
	h := userHTTP.New(srv.l, uc)

	userHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "User domain registered")
}

// setupTodoDomain initializes the todo domain and registers its routes. The
// use case is returned so the chat domain can drive the same todo operations.
func (srv *HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) todo.UseCase {
	repo := todoSqlite.New(srv.db, srv.l)
	uc := todoUsecase.New(repo, srv.parser, srv.l)
	h := todoHTTP.New(srv.l, uc, srv.parser)

	todoHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Todo domain registered")

	return uc
}

// setupChatDomain builds the agent pipeline on top of the todo use case and
// registers the chat route. Skill registration fails fast on a bad schema.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, todoUC todo.UseCase) error {
	cls := classifier.New(srv.l, classifier.DefaultCacheSize)

	registry := agent.NewSkillRegistry()
	for _, sk := range []agent.Skill{
		skills.NewCreateSkill(todoUC, srv.l),
		skills.NewUpdateSkill(todoUC, srv.l),
		skills.NewDeleteSkill(todoUC, srv.l),
		skills.NewQuerySkill(todoUC, srv.l),
	} {
		if err := registry.Register(sk); err != nil {
			return err
		}
	}

	orc := orchestrator.New(cls, registry, srv.l, srv.confidenceThreshold)
	h := chatHTTP.New(srv.l, orc)

	chatHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Chat domain registered with %d skills", len(registry.List()))

	return nil
}
