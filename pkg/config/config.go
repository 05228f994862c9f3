package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel  string
	LogFormat string

	// Polymarket APIs
	PolymarketDataURL  string
	PolymarketGammaURL string

	// Retrieval
	FetchWorkers   int
	FetchPageSize  int
	GammaTimeout   time.Duration
	TradesTimeout  time.Duration
	ConditionTTL   time.Duration
	ConditionCache int64

	// Export
	OutputDir   string
	StorageMode string // "json" or "postgres"

	// Debug HTTP server (metrics, health, progress)
	MetricsEnabled bool
	HTTPPort       string

	// Postgres (STORAGE_MODE=postgres)
	PostgresHost string
	PostgresPort string
	PostgresUser string
	PostgresPass string
	PostgresDB   string
	PostgresSSL  string
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		// Application defaults
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "console"),

		// Polymarket API defaults
		PolymarketDataURL:  getEnvOrDefault("POLYMARKET_DATA_API_URL", "https://data-api.polymarket.com"),
		PolymarketGammaURL: getEnvOrDefault("POLYMARKET_GAMMA_API_URL", "https://gamma-api.polymarket.com"),

		// Retrieval defaults. The worker bound exists to respect upstream
		// rate limits, not for correctness.
		FetchWorkers:   getIntOrDefault("FETCH_WORKERS", 20),
		FetchPageSize:  getIntOrDefault("FETCH_PAGE_SIZE", 500),
		GammaTimeout:   getDurationOrDefault("GAMMA_TIMEOUT", 10*time.Second),
		TradesTimeout:  getDurationOrDefault("TRADES_TIMEOUT", 15*time.Second),
		ConditionTTL:   getDurationOrDefault("CONDITION_CACHE_TTL", 24*time.Hour),
		ConditionCache: int64(getIntOrDefault("CONDITION_CACHE_SIZE", 10000)),

		// Export defaults
		OutputDir:   getEnvOrDefault("OUTPUT_DIR", "analysis"),
		StorageMode: getEnvOrDefault("STORAGE_MODE", "json"),

		// Debug server defaults
		MetricsEnabled: getBoolOrDefault("METRICS_ENABLED", false),
		HTTPPort:       getEnvOrDefault("HTTP_PORT", "8080"),

		// Postgres defaults
		PostgresHost: getEnvOrDefault("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvOrDefault("POSTGRES_PORT", "5432"),
		PostgresUser: getEnvOrDefault("POSTGRES_USER", "polymarket"),
		PostgresPass: getEnvOrDefault("POSTGRES_PASSWORD", "polymarket123"),
		PostgresDB:   getEnvOrDefault("POSTGRES_DB", "polymarket_pnl"),
		PostgresSSL:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.PolymarketDataURL == "" {
		return fmt.Errorf("POLYMARKET_DATA_API_URL cannot be empty")
	}

	if c.PolymarketGammaURL == "" {
		return fmt.Errorf("POLYMARKET_GAMMA_API_URL cannot be empty")
	}

	if c.FetchWorkers <= 0 {
		return fmt.Errorf("FETCH_WORKERS must be positive, got %d", c.FetchWorkers)
	}

	if c.FetchPageSize <= 0 {
		return fmt.Errorf("FETCH_PAGE_SIZE must be positive, got %d", c.FetchPageSize)
	}

	if c.StorageMode != "json" && c.StorageMode != "postgres" {
		return fmt.Errorf("STORAGE_MODE must be 'json' or 'postgres', got %q", c.StorageMode)
	}

	if c.MetricsEnabled && c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT cannot be empty when METRICS_ENABLED is set")
	}

	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolVal
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}
