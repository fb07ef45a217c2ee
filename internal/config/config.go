package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the vote server configuration
type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	// PublicURL is the externally visible base URL, used for the
	// sitemap and the web app manifest
	PublicURL string
}

// Load reads server configuration from environment variables.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return &Config{
		Port:        getEnv("PORT", "8001"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: dbURL,
		PublicURL:   getEnv("PUBLIC_URL", "http://127.0.0.1:8001"),
	}, nil
}

// ClientConfig holds the stats dashboard configuration
type ClientConfig struct {
	ServerURL       string
	RefreshInterval time.Duration
	RequestTimeout  time.Duration
}

// LoadClient reads dashboard configuration from environment variables.
// Every setting has a default, so loading never fails.
func LoadClient() *ClientConfig {
	return &ClientConfig{
		ServerURL:       getEnv("VOE_SERVER_URL", "http://127.0.0.1:8001"),
		RefreshInterval: getDuration("VOE_REFRESH_INTERVAL", 30*time.Second),
		RequestTimeout:  getDuration("VOE_REQUEST_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
