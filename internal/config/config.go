// Package config loads server and CLI settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings.
type Config struct {
	// HTTP server
	Port int

	// Storage
	DBPath string

	// Auth
	JWTSecret     string
	TokenDuration time.Duration

	// RequireLogin refuses anonymous form access.
	RequireLogin bool

	// Calculation and display
	Currency  string
	Tolerance float64

	// Logging
	LogLevel string
}

// Load reads a .env file if one exists, then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to read .env file", "error", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from environment variables only.
func FromEnv() *Config {
	return &Config{
		Port:          getEnvInt("PORT", 8080),
		DBPath:        getEnv("DB_PATH", "./data/billsplit.db"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenDuration: getEnvDuration("TOKEN_DURATION", 24*time.Hour),
		RequireLogin:  getEnvBool("REQUIRE_LOGIN", false),
		Currency:      getEnv("SPLIT_CURRENCY", "BDT"),
		Tolerance:     getEnvFloat("SPLIT_TOLERANCE", 0.01),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}
	if c.DBPath == "" {
		problems = append(problems, "database path cannot be empty")
	}
	if c.JWTSecret == "" {
		problems = append(problems, "JWT secret cannot be empty")
	}
	if c.TokenDuration < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid token duration %v: must be at least 1 minute", c.TokenDuration))
	}
	if c.Tolerance <= 0 || c.Tolerance >= 1 || math.IsNaN(c.Tolerance) {
		problems = append(problems, fmt.Sprintf("invalid tolerance %v: must be greater than 0 and less than 1", c.Tolerance))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level %q: must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
