package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"conversational-todo/internal/model"
	"conversational-todo/pkg/datemath"
	"conversational-todo/pkg/log"
	"conversational-todo/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	// Shared infrastructure
	db         *sql.DB
	jwtManager scope.Manager
	parser     *datemath.Parser

	// Agent tuning
	confidenceThreshold float64
	rateLimitPerMin     int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	DB             *sql.DB
	JWTManager     scope.Manager
	DateMathParser *datemath.Parser

	ConfidenceThreshold float64
	RateLimitPerMin     int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		db:                  cfg.DB,
		jwtManager:          cfg.JWTManager,
		parser:              cfg.DateMathParser,
		confidenceThreshold: cfg.ConfidenceThreshold,
		rateLimitPerMin:     cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.parser == nil {
		return errors.New("datemath parser is required")
	}
	return nil
}
