package httpserver_test

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"conversational-todo/internal/httpserver"
	"conversational-todo/internal/model"
	"conversational-todo/pkg/datemath"
	"conversational-todo/pkg/log"
	"conversational-todo/pkg/scope"
)

func fullConfig(t *testing.T) httpserver.Config {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	jwtManager, err := scope.NewJWTManager("test-secret-please-ignore", time.Hour)
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	return httpserver.Config{
		Logger:              log.NewNop(),
		Port:                8080,
		Mode:                "test",
		Environment:         model.EnvironmentDevelopment,
		DB:                  db,
		JWTManager:          jwtManager,
		DateMathParser:      parser,
		ConfidenceThreshold: 0.5,
		RateLimitPerMin:     60,
	}
}

func TestNew(t *testing.T) {
	t.Run("Accepts Full Config", func(t *testing.T) {
		srv, err := httpserver.New(log.NewNop(), fullConfig(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if srv == nil {
			t.Fatal("expected server instance")
		}
	})

	t.Run("Rejects Missing Database", func(t *testing.T) {
		cfg := fullConfig(t)
		cfg.DB = nil

		if _, err := httpserver.New(log.NewNop(), cfg); err == nil {
			t.Error("expected error for nil database")
		}
	})

	t.Run("Rejects Missing JWT Manager", func(t *testing.T) {
		cfg := fullConfig(t)
		cfg.JWTManager = nil

		if _, err := httpserver.New(log.NewNop(), cfg); err == nil {
			t.Error("expected error for nil jwt manager")
		}
	})

	t.Run("Rejects Zero Port", func(t *testing.T) {
		cfg := fullConfig(t)
		cfg.Port = 0

		if _, err := httpserver.New(log.NewNop(), cfg); err == nil {
			t.Error("expected error for zero port")
		}
	})
}
