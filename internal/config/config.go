package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Word sources
const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	HTTPAddr        string
	WordsSource     string
	FixturesPath    string
	BotToken        string
	MigrationsPath  string
	ShutdownTimeout time.Duration
	RateLimit       RateLimitConfig
	Database        DatabaseConfig
}

// RateLimitConfig holds request throttling settings
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	rps, err := getEnvFloat("RATE_LIMIT_RPS", 20)
	if err != nil {
		return nil, err
	}
	burst, err := getEnvInt("RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, err
	}
	shutdown, err := getEnvInt("SHUTDOWN_TIMEOUT", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		WordsSource:     getEnv("WORDS_SOURCE", SourceMemory),
		FixturesPath:    os.Getenv("FIXTURES_PATH"),
		BotToken:        os.Getenv("BOT_TOKEN"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "file://migrations"),
		ShutdownTimeout: time.Duration(shutdown) * time.Second,
		RateLimit: RateLimitConfig{
			RequestsPerSecond: rps,
			Burst:             burst,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "slowka"),
			User:     getEnv("DB_USER", "slowka"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields
func (c *Config) Validate() error {
	switch c.WordsSource {
	case SourceMemory:
	case SourcePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when WORDS_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("WORDS_SOURCE must be %q or %q, got %q", SourceMemory, SourcePostgres, c.WordsSource)
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}

	return nil
}

// BotEnabled reports whether the Telegram transport should run
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
