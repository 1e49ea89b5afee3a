package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "modernc.org/sqlite"

	"conversational-todo/config"
	_ "conversational-todo/docs" // Swagger docs
	"conversational-todo/internal/httpserver"
	"conversational-todo/internal/model"
	todoSqlite "conversational-todo/internal/todo/repository/sqlite"
	userSqlite "conversational-todo/internal/user/repository/sqlite"
	"conversational-todo/pkg/datemath"
	"conversational-todo/pkg/log"
	"conversational-todo/pkg/scope"
)

// @title       Conversational Todo API
// @description Todo management with a natural language chat agent.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Conversational Todo...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	// modernc sqlite serializes writes through a single connection.
	db.SetMaxOpenConns(1)

	if err := userSqlite.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate users schema: ", err)
		return
	}
	if err := todoSqlite.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate todos schema: ", err)
		return
	}
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Shared components
	jwtManager, err := scope.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	dateMathParser, err := datemath.NewParser(cfg.Environment.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Environment.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         model.Environment(cfg.Environment.Name),
		DB:                  db,
		JWTManager:          jwtManager,
		DateMathParser:      dateMathParser,
		ConfidenceThreshold: cfg.Chat.ConfidenceThreshold,
		RateLimitPerMin:     cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
