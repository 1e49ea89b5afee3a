package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Auth
	Auth AuthConfig

	// Conversational agent
	Chat ChatConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type ChatConfig struct {
	ConfidenceThreshold float64
	RateLimitPerMin     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.Auth.JWTSecret = jwtSecret
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required - set it in config.yaml or via JWT_SECRET")
	}

	ttl, err := time.ParseDuration(viper.GetString("auth.token_ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid auth.token_ttl: %w", err)
	}
	cfg.Auth.TokenTTL = ttl

	// Conversational agent
	cfg.Chat.ConfidenceThreshold = viper.GetFloat64("chat.confidence_threshold")
	if cfg.Chat.ConfidenceThreshold <= 0 || cfg.Chat.ConfidenceThreshold > 1 {
		return nil, fmt.Errorf("chat.confidence_threshold must be in (0, 1], got %v", cfg.Chat.ConfidenceThreshold)
	}
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.timezone", "UTC")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("database.path", "todo.db")
	viper.SetDefault("auth.token_ttl", "24h")
	viper.SetDefault("chat.confidence_threshold", 0.5)
	viper.SetDefault("chat.rate_limit_per_min", 60)
}
