// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig holds the top-level server configuration read from the
// environment. Secrets never come from flags.
type AppConfig struct {
	DatabaseURL string
	Port        int
}

// NewAppConfig builds the application configuration from environment
// variables. DATABASE_URL is required; PORT defaults to 8080.
func NewAppConfig() (*AppConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", port)
	}

	return &AppConfig{
		DatabaseURL: databaseURL,
		Port:        port,
	}, nil
}
