// Package config loads the application configuration from an optional
// TOML file overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultSecret = "insecure-dev-secret"

// Config holds all application configuration
type Config struct {
	Port            string        `toml:"port"`
	Env             string        `toml:"env"`
	DBPath          string        `toml:"db_path"`
	SessionDBPath   string        `toml:"session_db_path"`
	SessionSecret   string        `toml:"session_secret"`
	SessionTTL      time.Duration `toml:"session_ttl"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
	LogLevel        string        `toml:"log_level"`
}

// Load builds the configuration: defaults, then the TOML file named by
// CONFIG_PATH (or ./inkpress.toml if present), then environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            "8080",
		Env:             "development",
		DBPath:          "data/blog.db",
		SessionDBPath:   "data/sessions",
		SessionSecret:   defaultSecret,
		SessionTTL:      24 * time.Hour,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		LogLevel:        "info",
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "inkpress.toml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.SessionDBPath = getEnv("SESSION_DB_PATH", cfg.SessionDBPath)
	cfg.SessionSecret = getEnv("SESSION_SECRET", cfg.SessionSecret)
	cfg.SessionTTL = getDurationEnv("SESSION_TTL", cfg.SessionTTL)
	cfg.ReadTimeout = getDurationEnv("SERVER_READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getDurationEnv("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.ShutdownTimeout = getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	if c.Env == "production" && c.SessionSecret == defaultSecret {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
