package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Identity   IdentityConfig
	HackerNews HackerNewsConfig
	Jobs       JobConfig
	RateLimit  RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// IdentityConfig points at the external identity service that owns sessions.
// The API never issues or mutates sessions, it only introspects them.
type IdentityConfig struct {
	BaseURL string
	Timeout time.Duration
}

type HackerNewsConfig struct {
	FeedURL string
}

type JobConfig struct {
	TrendingWindowHours  int // how far back trending looks
	TrendingLimit        int // entries kept in the trending cache
	CleanupRetentionDays int // read notifications older than this are deleted
	HNSyncLimit          int // max feed items ingested per sync
}

type RateLimitConfig struct {
	SharePerMinute int
	ShareBurst     int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	identityTimeout, err := time.ParseDuration(getEnv("IDENTITY_TIMEOUT", "3s"))
	if err != nil {
		return nil, fmt.Errorf("invalid IDENTITY_TIMEOUT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Pulse API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "pulse"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Identity: IdentityConfig{
			BaseURL: getEnv("IDENTITY_BASE_URL", "http://localhost:3000"),
			Timeout: identityTimeout,
		},
		HackerNews: HackerNewsConfig{
			FeedURL: getEnv("HN_FEED_URL", "https://hnrss.org/frontpage"),
		},
		Jobs: JobConfig{
			TrendingWindowHours:  getEnvInt("TRENDING_WINDOW_HOURS", 24),
			TrendingLimit:        getEnvInt("TRENDING_LIMIT", 10),
			CleanupRetentionDays: getEnvInt("NOTIFICATION_RETENTION_DAYS", 30),
			HNSyncLimit:          getEnvInt("HN_SYNC_LIMIT", 50),
		},
		RateLimit: RateLimitConfig{
			SharePerMinute: getEnvInt("SHARE_RATE_PER_MINUTE", 30),
			ShareBurst:     getEnvInt("SHARE_RATE_BURST", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for production safety.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Identity.BaseURL == "http://localhost:3000" {
			return fmt.Errorf("IDENTITY_BASE_URL must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
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
