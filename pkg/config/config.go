// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the ROI calculator service.
// ⭐ SSOT: every environment variable is read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Database
	Database DatabaseConfig

	// Redis
	Redis RedisConfig

	// Narrative rendering
	Interpretation InterpretationConfig

	// API rate limiting
	RateLimit RateLimitConfig

	// Scenario retention
	Scenario ScenarioConfig

	// Scheduler
	Scheduler SchedulerConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// DatabaseConfig holds PostgreSQL settings, pool limits included.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	URL      string

	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// RedisConfig holds Redis settings. Enabled false runs the service
// without caching.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// InterpretationConfig selects the locale and currency symbol used when
// rendering result narratives.
type InterpretationConfig struct {
	Locale         string
	CurrencySymbol string
}

// RateLimitConfig bounds per-client request rates on the HTTP API.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// ScenarioConfig controls saved-scenario housekeeping.
type ScenarioConfig struct {
	DraftRetentionDays int
	CacheTTL           time.Duration
}

// SchedulerConfig controls the in-process cron scheduler.
type SchedulerConfig struct {
	Enabled       bool
	PruneSchedule string // cron spec with seconds field
}

// Load reads configuration from environment variables.
// ⭐ SSOT: only this function calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			Name:            getEnv("DB_NAME", "anyroad_roi"),
			User:            getEnv("DB_USER", "anyroad_roi"),
			Password:        getEnv("DB_PASSWORD", ""),
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
		},

		// Narrative rendering
		Interpretation: InterpretationConfig{
			Locale:         getEnv("INTERPRETATION_LOCALE", "en-US"),
			CurrencySymbol: getEnv("INTERPRETATION_CURRENCY_SYMBOL", "$"),
		},

		// API rate limiting
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 20),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 40),
		},

		// Scenario retention
		Scenario: ScenarioConfig{
			DraftRetentionDays: getEnvAsInt("SCENARIO_DRAFT_RETENTION_DAYS", 30),
			CacheTTL:           getEnvAsDuration("SCENARIO_CACHE_TTL", "5m"),
		},

		// Scheduler
		Scheduler: SchedulerConfig{
			Enabled:       getEnvAsBool("SCHEDULER_ENABLED", true),
			PruneSchedule: getEnv("SCENARIO_PRUNE_SCHEDULE", "0 0 3 * * *"),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate rejects configurations the service cannot start with.
func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be > 0")
	}

	return nil
}

// loadEnvFile loads the first .env found: the working directory, then
// next to the executable, then one level above it.
func loadEnvFile() {
	candidates := []string{".env"}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(dir, ".env"),
			filepath.Join(dir, "..", ".env"),
		)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

// Unset or unparseable variables fall back to the given default.

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsDuration(key, fallback string) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
