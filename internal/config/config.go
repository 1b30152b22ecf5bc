package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	JWTSecret    string
	DataDir      string // Base path for the JSON collections
	Storage      string // "json" or "sqlite"
	DatabasePath string
}

// Load loads configuration from environment variables or sets defaults.
// The JWT secret has no default: a process that cannot sign tokens is
// misconfigured, so its absence fails startup.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret, ok := os.LookupEnv("JWT_SECRET")
	if !ok || secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	return &Config{
		ServerPort:   port,
		JWTSecret:    secret,
		DataDir:      getEnv("DATA_DIR", "./data"),
		Storage:      getEnv("STORAGE", "json"),
		DatabasePath: getEnv("DATABASE_PATH", "./bookstore.db"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
