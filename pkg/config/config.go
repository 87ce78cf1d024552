package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the screener. Load is the only place
// that reads environment variables.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Database (run history; optional outside the api/scheduler commands)
	Database DatabaseConfig

	// Upstream data sources
	Fetch FetchConfig

	// Screening defaults
	Screen ScreenConfig

	// Scheduler
	Scheduler SchedulerConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	URL string

	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// FetchConfig holds upstream fundamentals-source configuration.
type FetchConfig struct {
	QuoteBaseURL    string // Yahoo quote-summary endpoint
	UniverseURL     string // S&P 500 constituents page
	RequestsPerSec  float64
	RequestTimeout  time.Duration
	UniverseLimit   int // 0 = no limit
}

// ScreenConfig holds screening run defaults.
type ScreenConfig struct {
	Workers      int    // bounded parallelism across stocks
	CriteriaPath string // YAML criteria file; empty = built-in defaults
	MetricsPath  string // JSON metrics payload for offline runs
}

// SchedulerConfig holds the cron-driven run configuration.
type SchedulerConfig struct {
	Enabled  bool
	CronSpec string
}

// Load reads configuration from environment variables, after loading .env if
// one is found.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		Fetch: FetchConfig{
			QuoteBaseURL:   getEnv("QUOTE_BASE_URL", "https://query1.finance.yahoo.com/v10/finance/quoteSummary"),
			UniverseURL:    getEnv("UNIVERSE_URL", "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"),
			RequestsPerSec: getEnvAsFloat("FETCH_REQUESTS_PER_SEC", 2.0),
			RequestTimeout: getEnvAsDuration("FETCH_TIMEOUT", "30s"),
			UniverseLimit:  getEnvAsInt("UNIVERSE_LIMIT", 100),
		},

		Screen: ScreenConfig{
			Workers:      getEnvAsInt("SCREEN_WORKERS", 8),
			CriteriaPath: getEnv("CRITERIA_PATH", ""),
			MetricsPath:  getEnv("METRICS_PATH", ""),
		},

		Scheduler: SchedulerConfig{
			Enabled:  getEnvAsBool("SCHEDULER_ENABLED", false),
			CronSpec: getEnv("SCHEDULER_CRON", "0 0 18 * * MON-FRI"),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Screen.Workers < 1 {
		return fmt.Errorf("SCREEN_WORKERS must be >= 1")
	}

	if c.Fetch.RequestsPerSec <= 0 {
		return fmt.Errorf("FETCH_REQUESTS_PER_SEC must be > 0")
	}

	return nil
}

// loadEnvFile tries to load .env from the working directory or next to the
// executable.
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
