package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port          int
	BaseURL       string
	DatabaseURL   string
	RedisAddr     string
	SessionSecret string
	EncryptionKey string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	port, _ := strconv.Atoi(getEnv("PORT", "8080"))

	dbURL := getEnv("DATABASE_URL", "")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sessionSecret := getEnv("SESSION_SECRET", "")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	encKey := getEnv("ENCRYPTION_KEY", "")
	if encKey == "" {
		return nil, fmt.Errorf("ENCRYPTION_KEY is required (must be exactly 32 bytes)")
	}
	if len(encKey) != 32 {
		return nil, fmt.Errorf("ENCRYPTION_KEY must be exactly 32 bytes, got %d", len(encKey))
	}

	return &Config{
		Port:          port,
		BaseURL:       getEnv("BASE_URL", fmt.Sprintf("http://localhost:%d", port)),
		DatabaseURL:   dbURL,
		RedisAddr:     getEnv("REDIS_ADDR", ""), // empty disables the stats cache
		SessionSecret: sessionSecret,
		EncryptionKey: encKey,
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@caloria.app"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
