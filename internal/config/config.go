// Package config loads the application configuration from the environment
package config

import (
	"os"
	"strconv"

	"forecast24/internal/models"
	"forecast24/internal/provider"
	"forecast24/internal/provider/hvakosterstrommen"
)

// Config represents the application configuration
type Config struct {
	// API contains API server configuration
	API APIConfig
	// Database contains database configuration
	Database DatabaseConfig
	// Collector contains ingestion configuration
	Collector CollectorConfig

	// Rate Limiting Configuration
	RateLimit struct {
		Requests int // Number of requests allowed per window
		Window   int // Time window in seconds
		Burst    int // Maximum burst size
	}

	Provider map[string]provider.Config `json:"providers"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	// URL is a full connection string; when set it takes precedence
	// over the individual fields below
	URL string
	// Host is the database server hostname
	Host string
	// Port is the database server port
	Port int
	// User is the database username
	User string
	// Password is the database password
	Password string
	// DBName is the database name
	DBName string
	// SSLMode is the SSL mode for the database connection
	SSLMode string
	// MigrationsPath is the path to database migrations
	MigrationsPath string
}

// APIConfig contains API server settings
type APIConfig struct {
	// Port is the server port to listen on
	Port string
}

// CollectorConfig contains settings for the ingestion pipeline
type CollectorConfig struct {
	// BaseURL overrides the upstream price API base URL (used in tests)
	BaseURL string
	// Days is the trailing window a script-style backfill run covers
	Days int
	// SkipExisting skips whole days that already hold rows for an area
	SkipExisting bool
}

// LoadFromEnv retrieves configuration from environment variables
func (c *Config) LoadFromEnv() error {
	c.API = APIConfig{
		Port: getEnvOrDefault("API_PORT", "8080"),
	}
	c.Database = DatabaseConfig{
		URL:            os.Getenv("DATABASE_URL"),
		Host:           getEnvOrDefault("DB_HOST", "localhost"),
		Port:           getEnvAsInt("DB_PORT", 5432),
		User:           getEnvOrDefault("DB_USER", "postgres"),
		Password:       getEnvOrDefault("DB_PASSWORD", "postgres"),
		DBName:         getEnvOrDefault("DB_NAME", "forecast24"),
		SSLMode:        getEnvOrDefault("DB_SSL_MODE", "disable"),
		MigrationsPath: "migrations",
	}
	c.Collector = CollectorConfig{
		BaseURL:      os.Getenv("HVAKOSTER_BASE_URL"),
		Days:         getEnvAsInt("COLLECT_DAYS", 30),
		SkipExisting: getEnvAsBool("COLLECT_SKIP_EXISTING", true),
	}

	// Provider configuration for scheduled collection
	c.Provider = make(map[string]provider.Config)
	c.Provider[hvakosterstrommen.ProviderName] = provider.Config{
		Enabled:  getEnvAsBool("ENABLE_HVAKOSTERSTROMMEN", false),
		Schedule: getEnvOrDefault("COLLECT_SCHEDULE", ""),
		Areas:    models.Areas(),
		Days:     getEnvAsInt("COLLECT_SCHEDULE_DAYS", 3),
	}

	// Load rate limit configuration
	c.RateLimit.Requests = getEnvAsInt("RATE_LIMIT_REQUESTS", 1000)
	c.RateLimit.Window = getEnvAsInt("RATE_LIMIT_WINDOW", 60)
	c.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 50)

	return nil
}

// getEnvAsInt retrieves an environment variable and converts it to an integer
func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvAsBool retrieves an environment variable and converts it to a boolean
func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
