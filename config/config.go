// Package config centralizes application configuration.
// Values come from environment variables, with .env file support for
// development. Store credentials and secrets are injected here and never
// hardcoded anywhere else.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every configuration value the application needs.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string // CORS origins the desktop client connects from
}

// DatabaseConfig holds the SQLite store settings.
type DatabaseConfig struct {
	Path string // SQLite file path (e.g. ./data/socialapp.db)
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret            string // signing key — keep secret
	AccessTokenExpiry int    // minutes
}

// Load builds a Config from environment variables.
// A .env file, if present, is loaded first; in production the file does not
// exist and real environment variables are used.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	accessExpiry, err := strconv.Atoi(getEnv("JWT_ACCESS_EXPIRY_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY_MINUTES: %w", err)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           port,
			AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/socialapp.db"),
		},
		JWT: JWTConfig{
			Secret:            jwtSecret,
			AccessTokenExpiry: accessExpiry,
		},
	}

	return cfg, nil
}

// Addr returns the address the HTTP server listens on (e.g. "0.0.0.0:8080").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv reads an environment variable, falling back when unset.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
