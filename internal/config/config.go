// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aristath/etfoverlap/internal/utils"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir         string // Directory holding client_data.db (always absolute)
	LogLevel        string
	YahooBaseURL    string
	CleanupSchedule string // Cron spec (with seconds) for expired cache cleanup
	CheckSchedule   string // Cron spec (with seconds) for cache integrity and WAL checks
	AllowedOrigins  []string
	FetchTimeout    time.Duration // Per-ticker provider timeout inside one analysis
	Port            int
	MaxTickers      int
	DevMode         bool
	CacheEnabled    bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir, err := filepath.Abs(getEnv("ETF_OVERLAP_DATA_DIR", "./data"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	cfg := &Config{
		DataDir:         dataDir,
		Port:            getEnvAsInt("GO_PORT", 8001),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CacheEnabled:    getEnvAsBool("CACHE_ENABLED", true),
		CleanupSchedule: getEnv("CACHE_CLEANUP_SCHEDULE", "0 0 3 * * *"),
		CheckSchedule:   getEnv("CACHE_CHECK_SCHEDULE", "0 */30 * * * *"),
		YahooBaseURL:    getEnv("YAHOO_BASE_URL", ""),
		FetchTimeout:    getEnvAsDuration("FETCH_TIMEOUT_SECONDS", 20*time.Second),
		MaxTickers:      getEnvAsInt("MAX_TICKERS", 20),
		AllowedOrigins:  utils.ParseCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks that the loaded values are usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.MaxTickers <= 0 {
		return fmt.Errorf("MAX_TICKERS must be positive, got %d", c.MaxTickers)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("FETCH_TIMEOUT_SECONDS cannot be negative")
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	return nil
}

// ClientDataPath returns the location of the provider response cache database.
func (c *Config) ClientDataPath() string {
	return filepath.Join(c.DataDir, "client_data.db")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getEnvAsDuration reads a whole number of seconds. Zero disables the timeout.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
